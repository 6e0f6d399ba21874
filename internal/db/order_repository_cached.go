package db

import (
	"context"
	"fmt"
	"log"

	"github.com/ordersys/orderflow-go/internal/domain"
	"github.com/ordersys/orderflow-go/internal/repository"
)

// Cache is the subset of the Redis cache the decorator needs. Any error
// from Get is treated as a miss.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, key string) error
}

// CachedOrderRepository is a read-through cache in front of another order
// repository. Save writes through and invalidates, so stage consumers never
// observe a stale status via the API.
type CachedOrderRepository struct {
	repo  repository.OrderRepository
	cache Cache
}

func NewCachedOrderRepository(repo repository.OrderRepository, cache Cache) *CachedOrderRepository {
	return &CachedOrderRepository{
		repo:  repo,
		cache: cache,
	}
}

// Cache key helpers
func orderKey(id string) string {
	return fmt.Sprintf("order:%s", id)
}

func allOrdersKey() string {
	return "orders:all"
}

func (r *CachedOrderRepository) Save(ctx context.Context, order *domain.Order) error {
	if err := r.repo.Save(ctx, order); err != nil {
		return err
	}

	if err := r.cache.Delete(ctx, orderKey(order.ID)); err != nil {
		log.Printf("⚠️ Failed to invalidate cache for order %s: %v", order.ID, err)
	}
	if err := r.cache.Delete(ctx, allOrdersKey()); err != nil {
		log.Printf("⚠️ Failed to invalidate cache for all orders: %v", err)
	}

	return nil
}

func (r *CachedOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	cacheKey := orderKey(id)

	// Try cache first
	var order domain.Order
	if err := r.cache.Get(ctx, cacheKey, &order); err == nil {
		log.Printf("📦 Cache HIT: order %s", id)
		return &order, nil
	}

	// Cache miss - get from repository
	o, err := r.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if o == nil {
		return nil, nil
	}

	if err := r.cache.Set(ctx, cacheKey, o); err != nil {
		log.Printf("⚠️ Failed to cache order %s: %v", id, err)
	}

	return o, nil
}

func (r *CachedOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	cacheKey := allOrdersKey()

	var orders []domain.Order
	if err := r.cache.Get(ctx, cacheKey, &orders); err == nil {
		log.Println("📦 Cache HIT: all orders")
		return orders, nil
	}

	orders, err := r.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, cacheKey, orders); err != nil {
		log.Printf("⚠️ Failed to cache orders: %v", err)
	}

	return orders, nil
}
