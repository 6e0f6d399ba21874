package domain

import "time"

// InventoryLog is an append-only fact record, one per order item per
// inventory update.
type InventoryLog struct {
	OrderID   string    `json:"order_id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Timestamp time.Time `json:"timestamp"`
}
