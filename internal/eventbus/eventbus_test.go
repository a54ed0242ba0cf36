package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"rubberband/internal/domain"
)

func waitFor(t *testing.T, ch <-chan DomainEvent) DomainEvent {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event delivery")
		return nil
	}
}

func TestPublishReachesSubscriber(t *testing.T) {
	t.Parallel()

	b := New()
	received := make(chan DomainEvent, 4)
	b.Subscribe(EventDragStarted, func(e DomainEvent) { received <- e })

	b.Publish(domain.DragStartedEvent{DragType: domain.DragAdditive})

	e := waitFor(t, received)
	started, ok := e.(DragStartedEvent)
	require.True(t, ok, "subscriber should receive the concrete event type")
	require.Equal(t, domain.DragAdditive, started.DragType)
}

func TestSubscriberOnlySeesItsEventType(t *testing.T) {
	t.Parallel()

	b := New()
	received := make(chan DomainEvent, 4)
	b.Subscribe(EventDragEnded, func(e DomainEvent) { received <- e })

	b.Publish(domain.DragStartedEvent{DragType: domain.DragReplace})
	b.Publish(domain.DragEndedEvent{DragType: domain.DragReplace, Selected: 3})

	e := waitFor(t, received)
	require.Equal(t, EventDragEnded, e.Type(), "only the subscribed type should be delivered")
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	t.Parallel()

	b := New()
	received := make(chan DomainEvent, 4)
	unsubscribe := b.Subscribe(EventDragStarted, func(e DomainEvent) { received <- e })

	b.Publish(domain.DragStartedEvent{DragType: domain.DragReplace})
	waitFor(t, received)

	unsubscribe()
	b.Publish(domain.DragStartedEvent{DragType: domain.DragInvert})

	select {
	case <-received:
		t.Fatal("unsubscribed handler must not be called")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestUnsubscribeRemovesOnlyItsHandler(t *testing.T) {
	t.Parallel()

	b := New()
	first := make(chan DomainEvent, 4)
	second := make(chan DomainEvent, 4)
	unsubscribeFirst := b.Subscribe(EventDragEnded, func(e DomainEvent) { first <- e })
	b.Subscribe(EventDragEnded, func(e DomainEvent) { second <- e })

	unsubscribeFirst()
	b.Publish(domain.DragEndedEvent{DragType: domain.DragReplace, Selected: 1})

	waitFor(t, second)
	select {
	case <-first:
		t.Fatal("removed handler must not be called")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestHandlerPanicIsContained(t *testing.T) {
	t.Parallel()

	b := New()
	received := make(chan DomainEvent, 4)
	b.Subscribe(EventDragStarted, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventDragStarted, func(e DomainEvent) { received <- e })

	b.Publish(domain.DragStartedEvent{DragType: domain.DragReplace})
	waitFor(t, received)
}
