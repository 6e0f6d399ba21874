package usecase

import (
	"time"

	"github.com/ordersys/orderflow-go/internal/domain"
)

type CreateOrderInput struct {
	CustomerID string
	Items      []CreateOrderItemInput
}

type CreateOrderItemInput struct {
	ProductID string
	Quantity  int
	UnitPrice float64
}

// OrderDTO is the flattened projection returned to callers.
type OrderDTO struct {
	ID          string         `json:"id"`
	CustomerID  string         `json:"customer_id"`
	Status      string         `json:"status"`
	TotalAmount float64        `json:"total_amount"`
	Items       []OrderItemDTO `json:"items"`
	CreatedAt   time.Time      `json:"created_at"`
}

type OrderItemDTO struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// ToOrderDTO projects an order with its recomputed total.
func ToOrderDTO(order *domain.Order) (*OrderDTO, error) {
	total, err := order.TotalAmount()
	if err != nil {
		return nil, err
	}

	items := make([]OrderItemDTO, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemDTO{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.Amount,
		})
	}

	return &OrderDTO{
		ID:          order.ID,
		CustomerID:  order.CustomerID,
		Status:      string(order.Status),
		TotalAmount: total.Amount,
		Items:       items,
		CreatedAt:   order.CreatedAt,
	}, nil
}
