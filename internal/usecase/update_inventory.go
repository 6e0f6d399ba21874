package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ordersys/orderflow-go/internal/domain"
	"github.com/ordersys/orderflow-go/internal/eventbus"
	"github.com/ordersys/orderflow-go/internal/events"
	"github.com/ordersys/orderflow-go/internal/repository"
)

type UpdateInventoryUseCase struct {
	orders  repository.OrderRepository
	logs    repository.InventoryLogRepository
	bus     *eventbus.Bus
	reserve ReservationPolicy
}

func NewUpdateInventoryUseCase(
	orders repository.OrderRepository,
	logs repository.InventoryLogRepository,
	bus *eventbus.Bus,
	reserve ReservationPolicy,
) *UpdateInventoryUseCase {
	return &UpdateInventoryUseCase{orders: orders, logs: logs, bus: bus, reserve: reserve}
}

// Execute applies the reservation policy once for the whole order, then
// writes one inventory log per item regardless of the outcome.
func (uc *UpdateInventoryUseCase) Execute(ctx context.Context, orderID string) error {
	order, err := uc.orders.FindByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("failed to load order %s: %w", orderID, err)
	}
	if order == nil {
		return domain.ErrOrderNotFound
	}

	reserved := uc.reserve()
	if reserved {
		order.UpdateStatus(domain.OrderStatusInventoryReserved)
	} else {
		order.UpdateStatus(domain.OrderStatusFailed)
	}

	if err := uc.orders.Save(ctx, order); err != nil {
		return fmt.Errorf("failed to save order %s: %w", orderID, err)
	}

	for _, item := range order.Items {
		entry := &domain.InventoryLog{
			OrderID:   orderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Timestamp: time.Now().UTC(),
		}
		if err := uc.logs.Save(ctx, entry); err != nil {
			return fmt.Errorf("failed to save inventory log for product %s: %w", item.ProductID, err)
		}
	}

	eventItems := make([]events.InventoryItemEvent, 0, len(order.Items))
	for _, item := range order.Items {
		eventItems = append(eventItems, events.InventoryItemEvent{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Reserved:  reserved,
		})
	}

	uc.bus.Emit(events.InventoryUpdated, events.InventoryUpdatedEvent{
		OrderID: orderID,
		Items:   eventItems,
	})

	log.Printf("📦 Inventory for order %s: reserved=%t (%d items logged)", orderID, reserved, len(order.Items))
	return nil
}
