package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/ordersys/orderflow-go/internal/domain"
)

// MemoryOrderRepository is a mutex-guarded map. Reads hand out copies and
// Save overwrites the whole record, so concurrent stages see snapshots and
// the last write wins, same as a document store.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]domain.Order
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: make(map[string]domain.Order)}
}

func (r *MemoryOrderRepository) Save(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *order
	stored.Items = append([]domain.OrderItem(nil), order.Items...)
	r.orders[order.ID] = stored
	return nil
}

func (r *MemoryOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	order := stored
	order.Items = append([]domain.OrderItem(nil), stored.Items...)
	return &order, nil
}

func (r *MemoryOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		order := o
		order.Items = append([]domain.OrderItem(nil), o.Items...)
		orders = append(orders, order)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt.Before(orders[j].CreatedAt) })
	return orders, nil
}

type MemoryPaymentRepository struct {
	mu       sync.RWMutex
	payments map[string]domain.Payment // keyed by payment id
}

func NewMemoryPaymentRepository() *MemoryPaymentRepository {
	return &MemoryPaymentRepository{payments: make(map[string]domain.Payment)}
}

func (r *MemoryPaymentRepository) Save(ctx context.Context, payment *domain.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payments[payment.ID] = *payment
	return nil
}

func (r *MemoryPaymentRepository) FindByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.payments {
		if p.OrderID == orderID {
			payment := p
			return &payment, nil
		}
	}
	return nil, nil
}

type MemoryInventoryLogRepository struct {
	mu      sync.RWMutex
	entries []domain.InventoryLog
}

func NewMemoryInventoryLogRepository() *MemoryInventoryLogRepository {
	return &MemoryInventoryLogRepository{}
}

func (r *MemoryInventoryLogRepository) Save(ctx context.Context, entry *domain.InventoryLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *MemoryInventoryLogRepository) FindByOrderID(ctx context.Context, orderID string) ([]domain.InventoryLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var entries []domain.InventoryLog
	for _, e := range r.entries {
		if e.OrderID == orderID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}
