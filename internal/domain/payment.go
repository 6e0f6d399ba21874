package domain

import "time"

type PaymentStatus string

const (
	PaymentStatusProcessing PaymentStatus = "PROCESSING"
	PaymentStatusApproved   PaymentStatus = "APPROVED"
	PaymentStatusDeclined   PaymentStatus = "DECLINED"
)

// Payment references an order by id; a fresh payment is minted for every
// processing attempt.
type Payment struct {
	ID        string        `json:"id"`
	OrderID   string        `json:"order_id"`
	Amount    Money         `json:"amount"`
	Status    PaymentStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

func NewPayment(id, orderID string, amount Money) *Payment {
	return &Payment{
		ID:        id,
		OrderID:   orderID,
		Amount:    amount,
		Status:    PaymentStatusProcessing,
		CreatedAt: time.Now().UTC(),
	}
}

func (p *Payment) Approve() {
	p.Status = PaymentStatusApproved
}

func (p *Payment) Decline() {
	p.Status = PaymentStatusDeclined
}
