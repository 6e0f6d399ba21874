package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/ordersys/orderflow-go/internal/config"
	"github.com/ordersys/orderflow-go/internal/consumer"
	"github.com/ordersys/orderflow-go/internal/db"
	"github.com/ordersys/orderflow-go/internal/discovery"
	"github.com/ordersys/orderflow-go/internal/eventbus"
	"github.com/ordersys/orderflow-go/internal/messaging"
	"github.com/ordersys/orderflow-go/internal/observer"
	"github.com/ordersys/orderflow-go/internal/usecase"
)

const (
	serviceName = "inventory-service"
	serviceID   = "inventory-service-1"
	servicePort = 8082
)

func main() {
	cfg := config.Load()

	// Connect to PostgreSQL
	database, err := db.NewPostgresDB(cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresUser, cfg.PostgresPassword, cfg.PostgresDB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Connect to RabbitMQ
	rabbitMQ, err := messaging.NewRabbitMQ(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer rabbitMQ.Close()

	for _, queue := range []string{messaging.InventoryQueue, messaging.NotificationQueue} {
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
		Tags: []string{"worker", "inventory"},
	})
	if err != nil {
		log.Fatalf("Failed to register service: %v", err)
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		log.Println("Shutting down...")
		consul.Deregister(serviceID)
		rabbitMQ.Close()
		os.Exit(0)
	}()

	// Event bus + observer: inventory.updated is forwarded to notifications
	bus := eventbus.New()
	observer.RegisterInventoryUpdated(bus, rabbitMQ)

	orderRepo := db.NewOrderRepository(database)
	logRepo := db.NewInventoryLogRepository(database)
	updateInventory := usecase.NewUpdateInventoryUseCase(
		orderRepo,
		logRepo,
		bus,
		usecase.RandomPolicy(usecase.DefaultReservationRate),
	)

	inventoryConsumer := consumer.NewInventoryConsumer(updateInventory)
	if err := inventoryConsumer.Start(rabbitMQ); err != nil {
		log.Fatalf("Failed to start consumer: %v", err)
	}

	// Health endpoint backing the Consul check
	router := gin.Default()
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": serviceName})
	})

	log.Printf("🚀 %s starting on http://localhost:%d", serviceName, servicePort)
	router.Run(":8082")
}
