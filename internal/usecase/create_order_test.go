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

func captureOrderCreated(bus *eventbus.Bus) *[]events.OrderCreatedEvent {
	captured := &[]events.OrderCreatedEvent{}
	bus.Subscribe(events.OrderCreated, func(payload interface{}) error {
		*captured = append(*captured, payload.(events.OrderCreatedEvent))
		return nil
	})
	return captured
}

func TestCreateOrder(t *testing.T) {
	orders := repository.NewMemoryOrderRepository()
	bus := eventbus.New()
	captured := captureOrderCreated(bus)
	uc := NewCreateOrderUseCase(orders, bus)

	input := CreateOrderInput{
		CustomerID: "c1",
		Items: []CreateOrderItemInput{
			{ProductID: "p1", Quantity: 2, UnitPrice: 100},
			{ProductID: "p2", Quantity: 1, UnitPrice: 50},
		},
	}

	dto, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if dto.Status != string(domain.OrderStatusPending) {
		t.Fatalf("expected PENDING, got %s", dto.Status)
	}
	if dto.TotalAmount != 250 {
		t.Fatalf("expected total 250, got %v", dto.TotalAmount)
	}
	if len(dto.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(dto.Items))
	}
	if dto.Items[0].UnitPrice != 100 || dto.Items[1].UnitPrice != 50 {
		t.Fatalf("unit prices not resolved: %+v", dto.Items)
	}

	// exactly one repository write
	stored, err := orders.FindByID(context.Background(), dto.ID)
	if err != nil {
		t.Fatalf("FindByID error: %v", err)
	}
	if stored == nil || len(stored.Items) != 2 {
		t.Fatalf("persisted order wrong: %+v", stored)
	}

	// exactly one order.created event carrying the total
	if len(*captured) != 1 {
		t.Fatalf("expected exactly 1 event, got %d", len(*captured))
	}
	event := (*captured)[0]
	if event.OrderID != dto.ID || event.CustomerID != "c1" || event.TotalAmount != 250 {
		t.Fatalf("unexpected event: %+v", event)
	}
	if len(event.Items) != 2 || event.Items[0].ProductID != "p1" || event.Items[0].Quantity != 2 {
		t.Fatalf("unexpected event items: %+v", event.Items)
	}
}

func TestCreateOrderMintsDistinctIDs(t *testing.T) {
	orders := repository.NewMemoryOrderRepository()
	bus := eventbus.New()
	uc := NewCreateOrderUseCase(orders, bus)

	input := CreateOrderInput{
		CustomerID: "c1",
		Items:      []CreateOrderItemInput{{ProductID: "p1", Quantity: 1, UnitPrice: 10}},
	}

	first, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	second, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if first.ID == second.ID {
		t.Fatalf("identical input produced identical ids: %s", first.ID)
	}
}

func TestCreateOrderRejectsNegativeUnitPrice(t *testing.T) {
	orders := repository.NewMemoryOrderRepository()
	bus := eventbus.New()
	captured := captureOrderCreated(bus)
	uc := NewCreateOrderUseCase(orders, bus)

	input := CreateOrderInput{
		CustomerID: "c1",
		Items:      []CreateOrderItemInput{{ProductID: "p1", Quantity: 1, UnitPrice: -5}},
	}

	_, err := uc.Execute(context.Background(), input)
	if !errors.Is(err, domain.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	// failed creation neither persists nor emits
	all, _ := orders.FindAll(context.Background())
	if len(all) != 0 {
		t.Fatalf("order persisted despite failure: %d", len(all))
	}
	if len(*captured) != 0 {
		t.Fatalf("event emitted despite failure: %d", len(*captured))
	}
}
