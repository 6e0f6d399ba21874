package observer

import (
	"encoding/json"
	"fmt"

	"github.com/ordersys/orderflow-go/internal/eventbus"
	"github.com/ordersys/orderflow-go/internal/events"
	"github.com/ordersys/orderflow-go/internal/messaging"
)

// Observers are pure translators: one domain event in, one or more queue
// publications out. They hold no state and make no business decisions.

type orderCreatedNotification struct {
	Type string `json:"type"`
	events.OrderCreatedEvent
}

type paymentProcessedNotification struct {
	Type string `json:"type"`
	events.PaymentProcessedEvent
}

type inventoryUpdatedNotification struct {
	Type string `json:"type"`
	events.InventoryUpdatedEvent
}

// RegisterOrderCreated fans order.created out to the payment and inventory
// queues and a tagged copy to the notification queue.
func RegisterOrderCreated(bus *eventbus.Bus, broker messaging.Broker) {
	bus.Subscribe(events.OrderCreated, func(payload interface{}) error {
		event, ok := payload.(events.OrderCreatedEvent)
		if !ok {
			return fmt.Errorf("unexpected payload type %T for %s", payload, events.OrderCreated)
		}

		body, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("failed to marshal event: %w", err)
		}

		if err := broker.Publish(messaging.PaymentQueue, body); err != nil {
			return err
		}
		if err := broker.Publish(messaging.InventoryQueue, body); err != nil {
			return err
		}

		notification, err := json.Marshal(orderCreatedNotification{
			Type:              events.TypeOrderCreated,
			OrderCreatedEvent: event,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal notification: %w", err)
		}
		return broker.Publish(messaging.NotificationQueue, notification)
	})
}

// RegisterPaymentProcessed forwards payment.processed to the notification queue.
func RegisterPaymentProcessed(bus *eventbus.Bus, broker messaging.Broker) {
	bus.Subscribe(events.PaymentProcessed, func(payload interface{}) error {
		event, ok := payload.(events.PaymentProcessedEvent)
		if !ok {
			return fmt.Errorf("unexpected payload type %T for %s", payload, events.PaymentProcessed)
		}

		notification, err := json.Marshal(paymentProcessedNotification{
			Type:                  events.TypePaymentProcessed,
			PaymentProcessedEvent: event,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal notification: %w", err)
		}
		return broker.Publish(messaging.NotificationQueue, notification)
	})
}

// RegisterInventoryUpdated forwards inventory.updated to the notification queue.
func RegisterInventoryUpdated(bus *eventbus.Bus, broker messaging.Broker) {
	bus.Subscribe(events.InventoryUpdated, func(payload interface{}) error {
		event, ok := payload.(events.InventoryUpdatedEvent)
		if !ok {
			return fmt.Errorf("unexpected payload type %T for %s", payload, events.InventoryUpdated)
		}

		notification, err := json.Marshal(inventoryUpdatedNotification{
			Type:                  events.TypeInventoryUpdated,
			InventoryUpdatedEvent: event,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal notification: %w", err)
		}
		return broker.Publish(messaging.NotificationQueue, notification)
	})
}
