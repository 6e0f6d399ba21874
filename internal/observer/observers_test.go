package observer

import (
	"encoding/json"
	"testing"

	"github.com/ordersys/orderflow-go/internal/eventbus"
	"github.com/ordersys/orderflow-go/internal/events"
	"github.com/ordersys/orderflow-go/internal/messaging"
)

func TestOrderCreatedObserverFansOut(t *testing.T) {
	bus := eventbus.New()
	broker := messaging.NewMemoryBroker()
	RegisterOrderCreated(bus, broker)

	bus.Emit(events.OrderCreated, events.OrderCreatedEvent{
		OrderID:     "order-1",
		CustomerID:  "c1",
		TotalAmount: 250,
		Items:       []events.OrderItemEvent{{ProductID: "p1", Quantity: 2}},
	})

	payment := broker.Pending(messaging.PaymentQueue)
	inventory := broker.Pending(messaging.InventoryQueue)
	notification := broker.Pending(messaging.NotificationQueue)

	if len(payment) != 1 || len(inventory) != 1 || len(notification) != 1 {
		t.Fatalf("expected one message per queue, got %d/%d/%d",
			len(payment), len(inventory), len(notification))
	}

	// stage queues carry the raw event
	var stage map[string]interface{}
	if err := json.Unmarshal(payment[0], &stage); err != nil {
		t.Fatalf("payment message not JSON: %v", err)
	}
	if stage["order_id"] != "order-1" || stage["total_amount"] != float64(250) {
		t.Fatalf("unexpected payment message: %v", stage)
	}
	if _, tagged := stage["type"]; tagged {
		t.Fatal("stage queues must not carry the notification type tag")
	}

	// notification queue carries the tagged envelope
	var envelope map[string]interface{}
	if err := json.Unmarshal(notification[0], &envelope); err != nil {
		t.Fatalf("notification message not JSON: %v", err)
	}
	if envelope["type"] != events.TypeOrderCreated {
		t.Fatalf("expected type %s, got %v", events.TypeOrderCreated, envelope["type"])
	}
	if envelope["order_id"] != "order-1" {
		t.Fatalf("envelope lost event fields: %v", envelope)
	}
}

func TestPaymentProcessedObserverNotifiesOnly(t *testing.T) {
	bus := eventbus.New()
	broker := messaging.NewMemoryBroker()
	RegisterPaymentProcessed(bus, broker)

	bus.Emit(events.PaymentProcessed, events.PaymentProcessedEvent{
		PaymentID: "pay-1",
		OrderID:   "order-1",
		Status:    "APPROVED",
		Amount:    250,
	})

	if len(broker.Pending(messaging.PaymentQueue)) != 0 {
		t.Fatal("payment.processed must not publish to the payment queue")
	}

	notification := broker.Pending(messaging.NotificationQueue)
	if len(notification) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notification))
	}

	var envelope map[string]interface{}
	json.Unmarshal(notification[0], &envelope)
	if envelope["type"] != events.TypePaymentProcessed || envelope["payment_id"] != "pay-1" {
		t.Fatalf("unexpected envelope: %v", envelope)
	}
}

func TestInventoryUpdatedObserverNotifiesOnly(t *testing.T) {
	bus := eventbus.New()
	broker := messaging.NewMemoryBroker()
	RegisterInventoryUpdated(bus, broker)

	bus.Emit(events.InventoryUpdated, events.InventoryUpdatedEvent{
		OrderID: "order-1",
		Items:   []events.InventoryItemEvent{{ProductID: "p1", Quantity: 2, Reserved: true}},
	})

	notification := broker.Pending(messaging.NotificationQueue)
	if len(notification) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notification))
	}

	var envelope map[string]interface{}
	json.Unmarshal(notification[0], &envelope)
	if envelope["type"] != events.TypeInventoryUpdated || envelope["order_id"] != "order-1" {
		t.Fatalf("unexpected envelope: %v", envelope)
	}
}

func TestObserverRejectsForeignPayload(t *testing.T) {
	bus := eventbus.New()
	broker := messaging.NewMemoryBroker()
	RegisterOrderCreated(bus, broker)

	// wrong payload type: the handler errors, the bus swallows it, nothing
	// reaches the broker
	bus.Emit(events.OrderCreated, "not an event")

	if len(broker.Pending(messaging.PaymentQueue)) != 0 {
		t.Fatal("foreign payload must not be published")
	}
}
