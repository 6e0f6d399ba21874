package domain

import (
	"errors"
	"time"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderStatus string

const (
	OrderStatusPending           OrderStatus = "PENDING"
	OrderStatusPaid              OrderStatus = "PAID"
	OrderStatusInventoryReserved OrderStatus = "INVENTORY_RESERVED"
	OrderStatusFailed            OrderStatus = "FAILED"
)

// OrderItem is immutable once constructed.
type OrderItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice Money  `json:"unit_price"`
}

func NewOrderItem(productID string, quantity int, unitPrice Money) OrderItem {
	return OrderItem{ProductID: productID, Quantity: quantity, UnitPrice: unitPrice}
}

func (i OrderItem) TotalPrice() Money {
	return i.UnitPrice.Multiply(float64(i.Quantity))
}

// Order is the aggregate root. Only Status is mutable after construction.
type Order struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customer_id"`
	Items      []OrderItem `json:"items"`
	Status     OrderStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
}

func NewOrder(id, customerID string, items []OrderItem) *Order {
	return &Order{
		ID:         id,
		CustomerID: customerID,
		Items:      items,
		Status:     OrderStatusPending,
		CreatedAt:  time.Now().UTC(),
	}
}

// TotalAmount folds the item totals with Money.Add starting at zero.
// It is recomputed on every call, never cached.
func (o *Order) TotalAmount() (Money, error) {
	total := Money{Amount: 0, Currency: DefaultCurrency}
	for _, item := range o.Items {
		sum, err := total.Add(item.TotalPrice())
		if err != nil {
			return Money{}, err
		}
		total = sum
	}
	return total, nil
}

// UpdateStatus overwrites the status unconditionally. Transition legality
// is the caller's decision.
func (o *Order) UpdateStatus(status OrderStatus) {
	o.Status = status
}
