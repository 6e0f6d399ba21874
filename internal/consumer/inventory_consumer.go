package consumer

import (
	"context"
	"encoding/json"
	"log"

	"github.com/ordersys/orderflow-go/internal/messaging"
	"github.com/ordersys/orderflow-go/internal/usecase"
)

// InventoryConsumer bridges the inventory queue to the UpdateInventory
// use-case.
type InventoryConsumer struct {
	updateInventory *usecase.UpdateInventoryUseCase
}

func NewInventoryConsumer(updateInventory *usecase.UpdateInventoryUseCase) *InventoryConsumer {
	return &InventoryConsumer{updateInventory: updateInventory}
}

func (c *InventoryConsumer) Start(broker messaging.Broker) error {
	return broker.Consume(messaging.InventoryQueue, func(message []byte) error {
		var event struct {
			OrderID string `json:"order_id"`
		}
		if err := json.Unmarshal(message, &event); err != nil {
			log.Printf("❌ Failed to parse inventory message: %v", err)
			return nil
		}

		log.Printf("📥 Updating inventory for order: %s", event.OrderID)
		return c.updateInventory.Execute(context.Background(), event.OrderID)
	})
}
