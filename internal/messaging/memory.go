package messaging

import (
	"fmt"
	"sync"
)

// MemoryBroker implements Broker in process. Delivery is synchronous: a
// publish to a queue with a registered handler invokes the handler on the
// publisher's goroutine, so tests control interleaving by delivery order.
// A failed handler leaves the message unacknowledged and pending; Redeliver
// flushes pending messages back through the handler.
type MemoryBroker struct {
	mu       sync.Mutex
	declared map[string]bool
	handlers map[string]func(message []byte) error
	pending  map[string][][]byte
	acked    map[string]int
}

func NewMemoryBroker() *MemoryBroker {
	return &MemoryBroker{
		declared: make(map[string]bool),
		handlers: make(map[string]func(message []byte) error),
		pending:  make(map[string][][]byte),
		acked:    make(map[string]int),
	}
}

func (b *MemoryBroker) DeclareQueue(name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.declared[name] = true
	return nil
}

func (b *MemoryBroker) Publish(queue string, message []byte) error {
	b.mu.Lock()
	handler := b.handlers[queue]
	if handler == nil {
		b.pending[queue] = append(b.pending[queue], message)
		b.mu.Unlock()
		return nil
	}
	b.mu.Unlock()

	return b.deliver(queue, handler, message)
}

// Consume registers the single handler for a queue and drains any messages
// published before the consumer existed.
func (b *MemoryBroker) Consume(queue string, handler func(message []byte) error) error {
	b.mu.Lock()
	if b.handlers[queue] != nil {
		b.mu.Unlock()
		return fmt.Errorf("queue %s already has a consumer", queue)
	}
	b.handlers[queue] = handler
	backlog := b.pending[queue]
	b.pending[queue] = nil
	b.mu.Unlock()

	for _, message := range backlog {
		b.deliver(queue, handler, message)
	}
	return nil
}

// Redeliver pushes unacknowledged messages through the handler again,
// standing in for broker redelivery after a crash.
func (b *MemoryBroker) Redeliver(queue string) {
	b.mu.Lock()
	handler := b.handlers[queue]
	backlog := b.pending[queue]
	b.pending[queue] = nil
	b.mu.Unlock()

	if handler == nil {
		return
	}
	for _, message := range backlog {
		b.deliver(queue, handler, message)
	}
}

func (b *MemoryBroker) deliver(queue string, handler func(message []byte) error, message []byte) error {
	if err := handler(message); err != nil {
		b.mu.Lock()
		b.pending[queue] = append(b.pending[queue], message)
		b.mu.Unlock()
		return nil
	}
	b.mu.Lock()
	b.acked[queue]++
	b.mu.Unlock()
	return nil
}

// Pending returns unacknowledged messages for a queue.
func (b *MemoryBroker) Pending(queue string) [][]byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([][]byte(nil), b.pending[queue]...)
}

// Acked returns how many messages have been acknowledged on a queue.
func (b *MemoryBroker) Acked(queue string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.acked[queue]
}
