package events

// Event bus names.
const (
	OrderCreated     = "order.created"
	PaymentProcessed = "payment.processed"
	InventoryUpdated = "inventory.updated"
)

// Notification envelope type tags.
const (
	TypeOrderCreated     = "ORDER_CREATED"
	TypePaymentProcessed = "PAYMENT_PROCESSED"
	TypeInventoryUpdated = "INVENTORY_UPDATED"
)

// OrderCreatedEvent is emitted after a new order is persisted.
type OrderCreatedEvent struct {
	OrderID     string           `json:"order_id"`
	CustomerID  string           `json:"customer_id"`
	TotalAmount float64          `json:"total_amount"`
	Items       []OrderItemEvent `json:"items"`
}

type OrderItemEvent struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// PaymentProcessedEvent is emitted after the payment stage decides.
type PaymentProcessedEvent struct {
	PaymentID string  `json:"payment_id"`
	OrderID   string  `json:"order_id"`
	Status    string  `json:"status"`
	Amount    float64 `json:"amount"`
}

// InventoryUpdatedEvent is emitted after the inventory stage decides.
// Reserved mirrors the single order-level outcome on every item.
type InventoryUpdatedEvent struct {
	OrderID string               `json:"order_id"`
	Items   []InventoryItemEvent `json:"items"`
}

type InventoryItemEvent struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Reserved  bool   `json:"reserved"`
}
