// Package events implements the in-process data-change bus. Every
// successful store mutation emits an event; realtime subscribers fan the
// events out to HTTP clients as fresh snapshots.
package events

import (
	"sync"
	"sync/atomic"

	"github.com/cobreklo/portafolio-api/internal/logger"
)

// Operation classifies a data change.
type Operation string

const (
	OpInsert Operation = "insert"
	OpUpdate Operation = "update"
	OpUpsert Operation = "upsert"
	OpDelete Operation = "delete"
)

// DataChangeEvent describes one mutation of one collection.
type DataChangeEvent struct {
	Collection string
	Operation  Operation
	// Document is the mutated document when the operation produced one,
	// nil for deletes.
	Document interface{}
}

// Handler processes one event. Returning a non-nil error terminates the
// subscription; the error is reported once on the bus error channel and
// delivery is never retried.
type Handler func(event DataChangeEvent) error

// SubscriptionError pairs a failed subscription with its handler error.
type SubscriptionError struct {
	Collection string
	Err        error
}

const eventBufferSize = 64

type subscription struct {
	id         uint64
	collection string
	events     chan DataChangeEvent
	done       chan struct{}
	closeOnce  sync.Once
}

func (s *subscription) close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// Bus is a per-collection publish/subscribe hub. Each subscription gets
// its own goroutine and queue, so one handler never runs concurrently
// with itself and a slow handler never blocks emitters or other
// subscribers. Subscriptions are independent: subscribing twice to the
// same collection yields two handles, and unsubscribing one leaves the
// other delivering.
type Bus struct {
	mu     sync.RWMutex
	subs   map[string]map[uint64]*subscription
	nextID atomic.Uint64
	errs   chan SubscriptionError
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		subs: make(map[string]map[uint64]*subscription),
		errs: make(chan SubscriptionError, eventBufferSize),
	}
}

// Errors returns the channel on which terminated subscriptions report
// their handler error, once each.
func (b *Bus) Errors() <-chan SubscriptionError {
	return b.errs
}

// Subscribe registers handler for every change to collection and returns
// the function that cancels the subscription. After the returned function
// is called no further deliveries occur; events already queued are
// dropped. Calling it more than once is safe.
func (b *Bus) Subscribe(collection string, handler Handler) (unsubscribe func()) {
	sub := &subscription{
		id:         b.nextID.Add(1),
		collection: collection,
		events:     make(chan DataChangeEvent, eventBufferSize),
		done:       make(chan struct{}),
	}

	b.mu.Lock()
	if b.subs[collection] == nil {
		b.subs[collection] = make(map[uint64]*subscription)
	}
	b.subs[collection][sub.id] = sub
	b.mu.Unlock()

	go b.deliver(sub, handler)

	return func() {
		b.remove(sub)
		sub.close()
	}
}

func (b *Bus) deliver(sub *subscription, handler Handler) {
	defer func() {
		if r := recover(); r != nil {
			logger.GetAppLogger().Errorf("Event handler panic on %s: %v", sub.collection, r)
			b.remove(sub)
		}
	}()

	for {
		select {
		case <-sub.done:
			return
		case event := <-sub.events:
			// A done signal racing with a queued event must win.
			select {
			case <-sub.done:
				return
			default:
			}
			if err := handler(event); err != nil {
				b.remove(sub)
				sub.close()
				select {
				case b.errs <- SubscriptionError{Collection: sub.collection, Err: err}:
				default:
				}
				return
			}
		}
	}
}

func (b *Bus) remove(sub *subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if group, ok := b.subs[sub.collection]; ok {
		delete(group, sub.id)
		if len(group) == 0 {
			delete(b.subs, sub.collection)
		}
	}
}

// Emit queues event for every current subscriber of its collection.
// Emit never blocks; when a subscriber's queue is full the event is
// dropped for that subscriber and logged.
func (b *Bus) Emit(event DataChangeEvent) {
	b.mu.RLock()
	group := b.subs[event.Collection]
	targets := make([]*subscription, 0, len(group))
	for _, sub := range group {
		targets = append(targets, sub)
	}
	b.mu.RUnlock()

	for _, sub := range targets {
		select {
		case sub.events <- event:
		case <-sub.done:
		default:
			logger.GetAppLogger().Warnf("Event queue full, dropping %s event for %s",
				event.Operation, event.Collection)
		}
	}
}

// SubscriberCount reports how many live subscriptions collection has.
func (b *Bus) SubscriberCount(collection string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[collection])
}
