package pubsub

import (
	"context"
	"sync"
	"time"
)

// DefaultBufferSize is the channel buffer given to each subscriber.
const DefaultBufferSize = 16

// Broker is a typed publish/subscribe broker. Subscriptions live until their
// context is cancelled or the broker shuts down; publishing never blocks —
// events for a full subscriber are dropped.
type Broker[T any] struct {
	name string
	subs map[chan Event[T]]struct{}
	mu   sync.RWMutex
	done chan struct{}
}

// NewBroker creates a broker. The name is used only for debug logging.
func NewBroker[T any](name string) *Broker[T] {
	return &Broker[T]{
		name: name,
		subs: make(map[chan Event[T]]struct{}),
		done: make(chan struct{}),
	}
}

// Name returns the broker's name.
func (b *Broker[T]) Name() string {
	return b.name
}

// Subscribe registers a listener that receives events until ctx is done or
// the broker shuts down. The returned channel is closed on teardown, so
// subscribers never act on a dead broker.
func (b *Broker[T]) Subscribe(ctx context.Context) <-chan Event[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	select {
	case <-b.done:
		ch := make(chan Event[T])
		close(ch)
		return ch
	default:
	}

	sub := make(chan Event[T], DefaultBufferSize)
	b.subs[sub] = struct{}{}

	go func() {
		select {
		case <-ctx.Done():
		case <-b.done:
		}

		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[sub]; !ok {
			return
		}
		delete(b.subs, sub)
		close(sub)
	}()

	return sub
}

// Publish delivers an event to every current subscriber. Slow subscribers
// with a full buffer miss the event rather than blocking the publisher.
func (b *Broker[T]) Publish(eventType EventType, payload T) {
	b.mu.RLock()
	select {
	case <-b.done:
		b.mu.RUnlock()
		return
	default:
	}
	subscribers := make([]chan Event[T], 0, len(b.subs))
	for sub := range b.subs {
		subscribers = append(subscribers, sub)
	}
	b.mu.RUnlock()

	if len(subscribers) == 0 {
		return
	}

	event := Event[T]{
		Type:      eventType,
		Payload:   payload,
		Timestamp: time.Now(),
	}
	for _, sub := range subscribers {
		select {
		case sub <- event:
		default:
		}
	}
}

// Shutdown closes all subscriber channels. Safe to call more than once.
func (b *Broker[T]) Shutdown() {
	select {
	case <-b.done:
		return
	default:
		close(b.done)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		delete(b.subs, ch)
		close(ch)
	}
}

// IsShutdown reports whether the broker has been shut down.
func (b *Broker[T]) IsShutdown() bool {
	select {
	case <-b.done:
		return true
	default:
		return false
	}
}

// SubscriberCount returns the current number of subscribers.
func (b *Broker[T]) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
