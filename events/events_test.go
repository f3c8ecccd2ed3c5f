package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_EmitReachesAllSubscribers(t *testing.T) {
	bus := NewBus()

	var wg sync.WaitGroup
	wg.Add(2)

	var mu sync.Mutex
	var received []Event

	handler := func(ctx context.Context, event Event) {
		mu.Lock()
		received = append(received, event)
		mu.Unlock()
		wg.Done()
	}

	bus.Subscribe(EventTypeCakeThrown, handler)
	bus.Subscribe(EventTypeCakeThrown, handler)

	bus.Emit(context.Background(), CakeThrownEvent{UserID: "u1", GuildID: "g1", Points: 5})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("handlers were not invoked in time")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 2)
	event, ok := received[0].(CakeThrownEvent)
	require.True(t, ok)
	assert.Equal(t, "u1", event.UserID)
}

func TestBus_EmitIgnoresOtherEventTypes(t *testing.T) {
	bus := NewBus()

	called := make(chan struct{}, 1)
	bus.Subscribe(EventTypeUserDataDeleted, func(ctx context.Context, event Event) {
		called <- struct{}{}
	})

	bus.Emit(context.Background(), CakeThrownEvent{UserID: "u1"})

	select {
	case <-called:
		t.Fatal("handler for a different event type was invoked")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestTransactionalBus_FlushDeliversPending(t *testing.T) {
	bus := NewBus()

	received := make(chan Event, 2)
	bus.Subscribe(EventTypeCakeThrown, func(ctx context.Context, event Event) {
		received <- event
	})

	txBus := NewTransactionalBus(bus)
	txBus.Publish(CakeThrownEvent{UserID: "u1"})
	txBus.Publish(CakeThrownEvent{UserID: "u2"})

	// Nothing is delivered until Flush
	select {
	case <-received:
		t.Fatal("event delivered before flush")
	case <-time.After(100 * time.Millisecond):
	}

	txBus.Flush(context.Background())

	for n := 0; n < 2; n++ {
		select {
		case <-received:
		case <-time.After(2 * time.Second):
			t.Fatal("pending event was not delivered after flush")
		}
	}
}

func TestTransactionalBus_DiscardDropsPending(t *testing.T) {
	bus := NewBus()

	received := make(chan Event, 1)
	bus.Subscribe(EventTypeCakeThrown, func(ctx context.Context, event Event) {
		received <- event
	})

	txBus := NewTransactionalBus(bus)
	txBus.Publish(CakeThrownEvent{UserID: "u1"})
	txBus.Discard()
	txBus.Flush(context.Background())

	select {
	case <-received:
		t.Fatal("discarded event was delivered")
	case <-time.After(100 * time.Millisecond):
	}
}
