package messaging

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestMemoryBrokerRoundTrip(t *testing.T) {
	broker := NewMemoryBroker()

	published, _ := json.Marshal(map[string]interface{}{
		"order_id": "order-1",
		"items":    []string{"p1", "p2"},
	})

	var received []byte
	if err := broker.Consume("test.queue", func(message []byte) error {
		received = message
		return nil
	}); err != nil {
		t.Fatalf("Consume error: %v", err)
	}

	if err := broker.Publish("test.queue", published); err != nil {
		t.Fatalf("Publish error: %v", err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(received, &got); err != nil {
		t.Fatalf("received message is not valid JSON: %v", err)
	}
	if got["order_id"] != "order-1" {
		t.Fatalf("JSON structure not preserved: %v", got)
	}
}

func TestMemoryBrokerBuffersUntilConsumer(t *testing.T) {
	broker := NewMemoryBroker()

	broker.Publish("test.queue", []byte(`{"order_id":"order-1"}`))
	broker.Publish("test.queue", []byte(`{"order_id":"order-2"}`))

	if pending := broker.Pending("test.queue"); len(pending) != 2 {
		t.Fatalf("expected 2 pending messages, got %d", len(pending))
	}

	var delivered int
	broker.Consume("test.queue", func(message []byte) error {
		delivered++
		return nil
	})

	if delivered != 2 {
		t.Fatalf("expected backlog of 2 delivered on consume, got %d", delivered)
	}
	if broker.Acked("test.queue") != 2 {
		t.Fatalf("expected 2 acks, got %d", broker.Acked("test.queue"))
	}
}

func TestMemoryBrokerFailedHandlerNotAcked(t *testing.T) {
	broker := NewMemoryBroker()

	attempts := 0
	broker.Consume("test.queue", func(message []byte) error {
		attempts++
		if attempts == 1 {
			return errors.New("transient failure")
		}
		return nil
	})

	broker.Publish("test.queue", []byte(`{"order_id":"order-1"}`))

	if broker.Acked("test.queue") != 0 {
		t.Fatal("failed delivery must not be acked")
	}
	if len(broker.Pending("test.queue")) != 1 {
		t.Fatal("failed delivery must stay pending for redelivery")
	}

	// redelivery succeeds and acks
	broker.Redeliver("test.queue")

	if attempts != 2 {
		t.Fatalf("expected 2 delivery attempts, got %d", attempts)
	}
	if broker.Acked("test.queue") != 1 {
		t.Fatalf("expected 1 ack after redelivery, got %d", broker.Acked("test.queue"))
	}
	if len(broker.Pending("test.queue")) != 0 {
		t.Fatal("no messages should remain pending")
	}
}

func TestMemoryBrokerSingleConsumerPerQueue(t *testing.T) {
	broker := NewMemoryBroker()

	noop := func(message []byte) error { return nil }
	if err := broker.Consume("test.queue", noop); err != nil {
		t.Fatalf("first Consume error: %v", err)
	}
	if err := broker.Consume("test.queue", noop); err == nil {
		t.Fatal("expected error registering a second consumer")
	}
}
