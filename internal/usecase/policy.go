package usecase

import "math/rand"

// ApprovalPolicy decides whether a payment is approved. Stands in for a
// payment gateway call.
type ApprovalPolicy func() bool

// ReservationPolicy decides whether stock is reserved for a whole order.
// Stands in for an inventory system call.
type ReservationPolicy func() bool

const (
	DefaultApprovalRate    = 0.8
	DefaultReservationRate = 0.9
)

// RandomPolicy succeeds with the given probability.
func RandomPolicy(successRate float64) func() bool {
	return func() bool {
		return rand.Float64() < successRate
	}
}
