package validation

// Item is a single order line in the create request.
type Item struct {
	ProductID string  `json:"product_id" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
}

// CreateOrderRequest is the payload for POST /orders.
type CreateOrderRequest struct {
	CustomerID string `json:"customer_id" validate:"required"`
	Items      []Item `json:"items" validate:"required,min=1,dive"`
}
