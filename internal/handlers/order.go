package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/ordersys/orderflow-go/internal/domain"
	"github.com/ordersys/orderflow-go/internal/repository"
	"github.com/ordersys/orderflow-go/internal/usecase"
	"github.com/ordersys/orderflow-go/internal/validation"
)

type OrderHandler struct {
	createOrder *usecase.CreateOrderUseCase
	orders      repository.OrderRepository
	validate    *validatorv10.Validate
}

func NewOrderHandler(createOrder *usecase.CreateOrderUseCase, orders repository.OrderRepository) *OrderHandler {
	return &OrderHandler{
		createOrder: createOrder,
		orders:      orders,
		validate:    validation.New(),
	}
}

// HealthCheck returns server status
func (h *OrderHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "order-service"})
}

// CreateOrder accepts a customer id plus items and starts the pipeline.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req validation.CreateOrderRequest
	if err := validation.BindAndValidate(c, &req, h.validate); err != nil {
		// BindAndValidate already wrote a 400
		return
	}

	input := usecase.CreateOrderInput{CustomerID: req.CustomerID}
	for _, item := range req.Items {
		input.Items = append(input.Items, usecase.CreateOrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	order, err := h.createOrder.Execute(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) || errors.Is(err, domain.ErrCurrencyMismatch) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetOrder returns the order projection or 404.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orders.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	dto, err := usecase.ToOrderDTO(order)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto)
}

// ListOrders returns all order projections.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orders.FindAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	dtos := make([]*usecase.OrderDTO, 0, len(orders))
	for i := range orders {
		dto, err := usecase.ToOrderDTO(&orders[i])
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		dtos = append(dtos, dto)
	}

	c.JSON(http.StatusOK, dtos)
}
