package consumer

import (
	"context"
	"encoding/json"
	"log"

	"github.com/ordersys/orderflow-go/internal/messaging"
	"github.com/ordersys/orderflow-go/internal/usecase"
)

// PaymentConsumer bridges the payment queue to the ProcessPayment use-case:
// one message in, one invocation out. The use-case result drives the ack.
type PaymentConsumer struct {
	processPayment *usecase.ProcessPaymentUseCase
}

func NewPaymentConsumer(processPayment *usecase.ProcessPaymentUseCase) *PaymentConsumer {
	return &PaymentConsumer{processPayment: processPayment}
}

func (c *PaymentConsumer) Start(broker messaging.Broker) error {
	return broker.Consume(messaging.PaymentQueue, func(message []byte) error {
		var event struct {
			OrderID string `json:"order_id"`
		}
		if err := json.Unmarshal(message, &event); err != nil {
			// Malformed messages are dropped, not requeued.
			log.Printf("❌ Failed to parse payment message: %v", err)
			return nil
		}

		log.Printf("📥 Processing payment for order: %s", event.OrderID)
		return c.processPayment.Execute(context.Background(), event.OrderID)
	})
}
