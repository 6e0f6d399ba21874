package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ordersys/orderflow-go/internal/cache"
	"github.com/ordersys/orderflow-go/internal/config"
	"github.com/ordersys/orderflow-go/internal/db"
	"github.com/ordersys/orderflow-go/internal/discovery"
	"github.com/ordersys/orderflow-go/internal/eventbus"
	"github.com/ordersys/orderflow-go/internal/handlers"
	"github.com/ordersys/orderflow-go/internal/messaging"
	"github.com/ordersys/orderflow-go/internal/observer"
	"github.com/ordersys/orderflow-go/internal/usecase"
)

const (
	serviceName = "order-service"
	serviceID   = "order-service-1"
	servicePort = 8080
)

func main() {
	cfg := config.Load()

	// Connect to PostgreSQL
	database, err := db.NewPostgresDB(cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresUser, cfg.PostgresPassword, cfg.PostgresDB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Connect to Redis
	redisCache, err := cache.NewRedisCache(cfg.RedisAddr, 5*time.Minute)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisCache.Close()

	// Connect to RabbitMQ
	rabbitMQ, err := messaging.NewRabbitMQ(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer rabbitMQ.Close()

	// Declare the stage queues up front so fan-out never hits a missing queue
	for _, queue := range []string{messaging.PaymentQueue, messaging.InventoryQueue, messaging.NotificationQueue} {
		if err := rabbitMQ.DeclareQueue(queue); err != nil {
			log.Fatalf("Failed to declare queue: %v", err)
		}
	}

	// Register with Consul
	consul, err := discovery.NewConsulClient(cfg.ConsulHost, cfg.ConsulPort)
	if err != nil {
		log.Fatalf("Failed to connect to Consul: %v", err)
	}
	err = consul.Register(discovery.ServiceConfig{
		Name: serviceName,
		ID:   serviceID,
		Port: servicePort,
		Tags: []string{"api", "orders"},
	})
	if err != nil {
		log.Fatalf("Failed to register service: %v", err)
	}

	// Deregister on shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Println("Shutting down...")
		consul.Deregister(serviceID)
		rabbitMQ.Close()
		os.Exit(0)
	}()

	// Event bus + observer: order.created fans out to the stage queues
	bus := eventbus.New()
	observer.RegisterOrderCreated(bus, rabbitMQ)

	// Repositories and use-case
	orderRepo := db.NewCachedOrderRepository(db.NewOrderRepository(database), redisCache)
	createOrder := usecase.NewCreateOrderUseCase(orderRepo, bus)

	orderHandler := handlers.NewOrderHandler(createOrder, orderRepo)

	// Setup router
	router := gin.Default()

	router.GET("/health", orderHandler.HealthCheck)
	router.GET("/orders", orderHandler.ListOrders)
	router.GET("/orders/:id", orderHandler.GetOrder)
	router.POST("/orders", orderHandler.CreateOrder)

	log.Printf("🚀 %s starting on http://localhost:%d", serviceName, servicePort)
	router.Run(":8080")
}
