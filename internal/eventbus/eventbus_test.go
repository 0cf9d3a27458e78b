package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chartgrip/internal/domain"
)

func TestPublishReachesSubscriber(t *testing.T) {
	t.Parallel()

	bus := New()
	received := make(chan DomainEvent, 1)

	bus.Subscribe(EventSelectionCleared, func(e DomainEvent) {
		received <- e
	})

	bus.Publish(domain.SelectionClearedEvent{})

	select {
	case e := <-received:
		assert.Equal(t, EventSelectionCleared, e.Type())
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestSubscriberOnlyGetsItsType(t *testing.T) {
	t.Parallel()

	bus := New()
	received := make(chan DomainEvent, 2)

	bus.Subscribe(EventSelectionChanged, func(e DomainEvent) {
		received <- e
	})

	bus.Publish(domain.SelectionClearedEvent{})
	bus.Publish(domain.SelectionChangedEvent{})

	select {
	case e := <-received:
		require.Equal(t, EventSelectionChanged, e.Type())
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}

	select {
	case e := <-received:
		t.Fatalf("unexpected extra event: %v", e.Type())
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHandlerPanicDoesNotKillDispatcher(t *testing.T) {
	t.Parallel()

	bus := New()
	received := make(chan struct{}, 1)

	bus.Subscribe(EventSelectionCleared, func(e DomainEvent) {
		panic("boom")
	})
	bus.Subscribe(EventSelectionChanged, func(e DomainEvent) {
		received <- struct{}{}
	})

	bus.Publish(domain.SelectionClearedEvent{})
	bus.Publish(domain.SelectionChangedEvent{})

	select {
	case <-received:
	case <-time.After(time.Second):
		t.Fatal("dispatcher died after handler panic")
	}
}
