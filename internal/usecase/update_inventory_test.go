package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/ordersys/orderflow-go/internal/domain"
	"github.com/ordersys/orderflow-go/internal/eventbus"
	"github.com/ordersys/orderflow-go/internal/events"
	"github.com/ordersys/orderflow-go/internal/repository"
)

func TestUpdateInventoryUnknownOrder(t *testing.T) {
	orders := repository.NewMemoryOrderRepository()
	logs := repository.NewMemoryInventoryLogRepository()
	bus := eventbus.New()
	uc := NewUpdateInventoryUseCase(orders, logs, bus, func() bool { return true })

	err := uc.Execute(context.Background(), "missing")
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestUpdateInventoryReserved(t *testing.T) {
	orders := repository.NewMemoryOrderRepository()
	logs := repository.NewMemoryInventoryLogRepository()
	bus := eventbus.New()

	var captured []events.InventoryUpdatedEvent
	bus.Subscribe(events.InventoryUpdated, func(payload interface{}) error {
		captured = append(captured, payload.(events.InventoryUpdatedEvent))
		return nil
	})

	seedOrder(t, orders)
	uc := NewUpdateInventoryUseCase(orders, logs, bus, func() bool { return true })

	if err := uc.Execute(context.Background(), "order-1"); err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	order, _ := orders.FindByID(context.Background(), "order-1")
	if order.Status != domain.OrderStatusInventoryReserved {
		t.Fatalf("expected INVENTORY_RESERVED, got %s", order.Status)
	}

	entries, _ := logs.FindByOrderID(context.Background(), "order-1")
	if len(entries) != 2 {
		t.Fatalf("expected one log per item, got %d", len(entries))
	}

	if len(captured) != 1 {
		t.Fatalf("expected exactly 1 event, got %d", len(captured))
	}
	for _, item := range captured[0].Items {
		if !item.Reserved {
			t.Fatalf("reserved flag must mirror the order-level outcome: %+v", captured[0].Items)
		}
	}
}

func TestUpdateInventoryFailedStillLogsEveryItem(t *testing.T) {
	orders := repository.NewMemoryOrderRepository()
	logs := repository.NewMemoryInventoryLogRepository()
	bus := eventbus.New()

	var captured []events.InventoryUpdatedEvent
	bus.Subscribe(events.InventoryUpdated, func(payload interface{}) error {
		captured = append(captured, payload.(events.InventoryUpdatedEvent))
		return nil
	})

	seedOrder(t, orders)
	uc := NewUpdateInventoryUseCase(orders, logs, bus, func() bool { return false })

	if err := uc.Execute(context.Background(), "order-1"); err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	order, _ := orders.FindByID(context.Background(), "order-1")
	if order.Status != domain.OrderStatusFailed {
		t.Fatalf("expected FAILED, got %s", order.Status)
	}

	// N log writes regardless of the reservation outcome
	entries, _ := logs.FindByOrderID(context.Background(), "order-1")
	if len(entries) != 2 {
		t.Fatalf("expected 2 logs despite failure, got %d", len(entries))
	}

	for _, item := range captured[0].Items {
		if item.Reserved {
			t.Fatalf("reserved flag must be false on failure: %+v", captured[0].Items)
		}
	}
}
