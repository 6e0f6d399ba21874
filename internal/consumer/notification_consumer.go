package consumer

import (
	"encoding/json"
	"log"

	"github.com/ordersys/orderflow-go/internal/messaging"
)

// NotificationConsumer is terminal: it logs the envelope and never calls
// back into a use-case.
type NotificationConsumer struct{}

func NewNotificationConsumer() *NotificationConsumer {
	return &NotificationConsumer{}
}

func (c *NotificationConsumer) Start(broker messaging.Broker) error {
	return broker.Consume(messaging.NotificationQueue, func(message []byte) error {
		var envelope struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(message, &envelope); err != nil {
			log.Printf("❌ Failed to parse notification: %v", err)
			return nil
		}

		log.Printf("🔔 Sending notification: %s", envelope.Type)
		log.Printf("   Data: %s", message)
		return nil
	})
}
