package repository

import (
	"context"

	"github.com/ordersys/orderflow-go/internal/domain"
)

// OrderRepository persists the order aggregate. FindByID returns
// (nil, nil) when no order exists for the id.
type OrderRepository interface {
	Save(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
}

// PaymentRepository persists payment attempts.
type PaymentRepository interface {
	Save(ctx context.Context, payment *domain.Payment) error
	FindByOrderID(ctx context.Context, orderID string) (*domain.Payment, error)
}

// InventoryLogRepository persists append-only inventory fact records.
type InventoryLogRepository interface {
	Save(ctx context.Context, entry *domain.InventoryLog) error
	FindByOrderID(ctx context.Context, orderID string) ([]domain.InventoryLog, error)
}
