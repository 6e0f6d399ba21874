package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/ordersys/orderflow-go/internal/domain"
	"github.com/ordersys/orderflow-go/internal/eventbus"
	"github.com/ordersys/orderflow-go/internal/events"
	"github.com/ordersys/orderflow-go/internal/repository"
)

type ProcessPaymentUseCase struct {
	orders   repository.OrderRepository
	payments repository.PaymentRepository
	bus      *eventbus.Bus
	approve  ApprovalPolicy
}

func NewProcessPaymentUseCase(
	orders repository.OrderRepository,
	payments repository.PaymentRepository,
	bus *eventbus.Bus,
	approve ApprovalPolicy,
) *ProcessPaymentUseCase {
	return &ProcessPaymentUseCase{orders: orders, payments: payments, bus: bus, approve: approve}
}

// Execute mints a fresh payment for the order's current total, applies the
// approval policy once and drives both status transitions from its outcome.
func (uc *ProcessPaymentUseCase) Execute(ctx context.Context, orderID string) error {
	order, err := uc.orders.FindByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("failed to load order %s: %w", orderID, err)
	}
	if order == nil {
		return domain.ErrOrderNotFound
	}

	total, err := order.TotalAmount()
	if err != nil {
		return err
	}

	payment := domain.NewPayment(uuid.NewString(), orderID, total)

	if uc.approve() {
		payment.Approve()
		order.UpdateStatus(domain.OrderStatusPaid)
	} else {
		payment.Decline()
		order.UpdateStatus(domain.OrderStatusFailed)
	}

	if err := uc.orders.Save(ctx, order); err != nil {
		return fmt.Errorf("failed to save order %s: %w", orderID, err)
	}
	if err := uc.payments.Save(ctx, payment); err != nil {
		return fmt.Errorf("failed to save payment %s: %w", payment.ID, err)
	}

	uc.bus.Emit(events.PaymentProcessed, events.PaymentProcessedEvent{
		PaymentID: payment.ID,
		OrderID:   orderID,
		Status:    string(payment.Status),
		Amount:    payment.Amount.Amount,
	})

	log.Printf("💳 Payment %s for order %s: %s", payment.ID, orderID, payment.Status)
	return nil
}
