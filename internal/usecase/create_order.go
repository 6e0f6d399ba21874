package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/ordersys/orderflow-go/internal/domain"
	"github.com/ordersys/orderflow-go/internal/eventbus"
	"github.com/ordersys/orderflow-go/internal/events"
	"github.com/ordersys/orderflow-go/internal/repository"
)

type CreateOrderUseCase struct {
	orders repository.OrderRepository
	bus    *eventbus.Bus
}

func NewCreateOrderUseCase(orders repository.OrderRepository, bus *eventbus.Bus) *CreateOrderUseCase {
	return &CreateOrderUseCase{orders: orders, bus: bus}
}

// Execute persists a new PENDING order and emits order.created. Exactly one
// repository write and one event emission per call.
func (uc *CreateOrderUseCase) Execute(ctx context.Context, input CreateOrderInput) (*OrderDTO, error) {
	items := make([]domain.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		unitPrice, err := domain.NewMoney(item.UnitPrice, domain.DefaultCurrency)
		if err != nil {
			return nil, fmt.Errorf("invalid unit price for product %s: %w", item.ProductID, err)
		}
		items = append(items, domain.NewOrderItem(item.ProductID, item.Quantity, unitPrice))
	}

	order := domain.NewOrder(uuid.NewString(), input.CustomerID, items)

	total, err := order.TotalAmount()
	if err != nil {
		return nil, err
	}

	if err := uc.orders.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	eventItems := make([]events.OrderItemEvent, 0, len(items))
	for _, item := range items {
		eventItems = append(eventItems, events.OrderItemEvent{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	uc.bus.Emit(events.OrderCreated, events.OrderCreatedEvent{
		OrderID:     order.ID,
		CustomerID:  order.CustomerID,
		TotalAmount: total.Amount,
		Items:       eventItems,
	})

	log.Printf("✅ Order %s created with total %.2f %s", order.ID, total.Amount, total.Currency)
	return ToOrderDTO(order)
}
