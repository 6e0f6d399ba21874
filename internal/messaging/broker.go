package messaging

// Queue names form the wire contract between the pipeline stages.
const (
	PaymentQueue      = "payment.queue"
	InventoryQueue    = "inventory.queue"
	NotificationQueue = "notification.queue"
)

// Broker is the durable publish/consume contract. Publish must not return
// until the broker has taken responsibility for the message. Consume
// registers a handler invoked once per delivery; the message is acknowledged
// only after the handler returns nil, so a failing handler leaves it
// eligible for redelivery (at-least-once).
type Broker interface {
	DeclareQueue(name string) error
	Publish(queue string, message []byte) error
	Consume(queue string, handler func(message []byte) error) error
}
