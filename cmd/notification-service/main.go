package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/ordersys/orderflow-go/internal/config"
	"github.com/ordersys/orderflow-go/internal/consumer"
	"github.com/ordersys/orderflow-go/internal/discovery"
	"github.com/ordersys/orderflow-go/internal/messaging"
)

const (
	serviceName = "notification-service"
	serviceID   = "notification-service-1"
	servicePort = 8083
)

func main() {
	cfg := config.Load()

	// Connect to RabbitMQ
	rabbitMQ, err := messaging.NewRabbitMQ(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer rabbitMQ.Close()

	if err := rabbitMQ.DeclareQueue(messaging.NotificationQueue); err != nil {
		log.Fatalf("Failed to declare queue: %v", err)
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
		Tags: []string{"worker", "notifications"},
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

	notificationConsumer := consumer.NewNotificationConsumer()
	if err := notificationConsumer.Start(rabbitMQ); err != nil {
		log.Fatalf("Failed to start consumer: %v", err)
	}

	// Health endpoint backing the Consul check
	router := gin.Default()
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": serviceName})
	})

	log.Printf("🚀 %s starting on http://localhost:%d", serviceName, servicePort)
	router.Run(":8083")
}
