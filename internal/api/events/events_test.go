package events

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, ch <-chan DataChangeEvent) DataChangeEvent {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return DataChangeEvent{}
	}
}

func TestSubscribeReceivesEmittedEvents(t *testing.T) {
	bus := NewBus()
	received := make(chan DataChangeEvent, 8)

	unsubscribe := bus.Subscribe("resenas", func(ev DataChangeEvent) error {
		received <- ev
		return nil
	})
	defer unsubscribe()

	bus.Emit(DataChangeEvent{Collection: "resenas", Operation: OpInsert, Document: "doc"})

	ev := waitFor(t, received)
	assert.Equal(t, OpInsert, ev.Operation)
	assert.Equal(t, "doc", ev.Document)
}

func TestEmitToOtherCollectionNotDelivered(t *testing.T) {
	bus := NewBus()
	received := make(chan DataChangeEvent, 8)

	unsubscribe := bus.Subscribe("resenas", func(ev DataChangeEvent) error {
		received <- ev
		return nil
	})
	defer unsubscribe()

	bus.Emit(DataChangeEvent{Collection: "albumes", Operation: OpInsert})

	select {
	case <-received:
		t.Fatal("received event for a different collection")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := NewBus()
	received := make(chan DataChangeEvent, 8)

	unsubscribe := bus.Subscribe("web", func(ev DataChangeEvent) error {
		received <- ev
		return nil
	})

	bus.Emit(DataChangeEvent{Collection: "web", Operation: OpUpdate})
	waitFor(t, received)

	unsubscribe()
	require.Eventually(t, func() bool {
		return bus.SubscriberCount("web") == 0
	}, time.Second, 10*time.Millisecond)

	bus.Emit(DataChangeEvent{Collection: "web", Operation: OpUpdate})
	select {
	case <-received:
		t.Fatal("received event after unsubscribe")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestResubscribeIsIndependentHandle(t *testing.T) {
	bus := NewBus()

	first := make(chan DataChangeEvent, 8)
	unsubscribeFirst := bus.Subscribe("contenido", func(ev DataChangeEvent) error {
		first <- ev
		return nil
	})
	unsubscribeFirst()

	second := make(chan DataChangeEvent, 8)
	unsubscribeSecond := bus.Subscribe("contenido", func(ev DataChangeEvent) error {
		second <- ev
		return nil
	})
	defer unsubscribeSecond()

	require.Eventually(t, func() bool {
		return bus.SubscriberCount("contenido") == 1
	}, time.Second, 10*time.Millisecond)

	bus.Emit(DataChangeEvent{Collection: "contenido", Operation: OpUpsert})

	waitFor(t, second)
	select {
	case <-first:
		t.Fatal("stale subscription received event")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestHandlerErrorTerminatesSubscriptionOnce(t *testing.T) {
	bus := NewBus()
	boom := errors.New("handler failed")

	calls := make(chan struct{}, 8)
	bus.Subscribe("resenas", func(DataChangeEvent) error {
		calls <- struct{}{}
		return boom
	})

	bus.Emit(DataChangeEvent{Collection: "resenas", Operation: OpInsert})

	select {
	case subErr := <-bus.Errors():
		assert.Equal(t, "resenas", subErr.Collection)
		assert.ErrorIs(t, subErr.Err, boom)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for subscription error")
	}

	// No redelivery after the error.
	bus.Emit(DataChangeEvent{Collection: "resenas", Operation: OpInsert})
	<-calls // the single failing call
	select {
	case <-calls:
		t.Fatal("handler called again after error")
	case <-time.After(100 * time.Millisecond):
	}
	assert.Equal(t, 0, bus.SubscriberCount("resenas"))
}

func TestDeliveryIsSerializedPerSubscriber(t *testing.T) {
	bus := NewBus()

	var active, maxActive int
	done := make(chan struct{})
	count := 0
	unsubscribe := bus.Subscribe("web", func(DataChangeEvent) error {
		// Handlers of one subscription never overlap, so unsynchronized
		// access here is safe exactly when delivery is serialized.
		active++
		if active > maxActive {
			maxActive = active
		}
		time.Sleep(time.Millisecond)
		active--
		count++
		if count == 10 {
			close(done)
		}
		return nil
	})
	defer unsubscribe()

	for i := 0; i < 10; i++ {
		bus.Emit(DataChangeEvent{Collection: "web", Operation: OpUpdate})
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for deliveries")
	}
	assert.Equal(t, 1, maxActive)
}
