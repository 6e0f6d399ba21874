package eventbus

import (
	"log"
	"sync"
)

// Handler receives the event payload. A returned error is logged and
// dropped; the bus is a dispatch indirection, not a fault boundary.
type Handler func(payload interface{}) error

// Bus is a single-process publish/subscribe keyed by event name.
// Dispatch is synchronous on the caller's goroutine, in registration order.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

func New() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

// Subscribe registers a handler for an event name.
func (b *Bus) Subscribe(name string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = append(b.handlers[name], handler)
}

// Emit invokes every handler registered for name and returns when all have
// completed. A failing handler does not prevent later handlers from running.
func (b *Bus) Emit(name string, payload interface{}) {
	b.mu.RLock()
	handlers := b.handlers[name]
	b.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler(payload); err != nil {
			log.Printf("⚠️ Event handler failed for %s: %v", name, err)
		}
	}
}
