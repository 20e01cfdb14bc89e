package feature

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event is the "operation completed" signal. It carries no payload beyond
// who sent it and when.
type Event struct {
	// Sender is the name of the variant that raised the event.
	Sender string

	// At is when the event was raised.
	At time.Time
}

// Observer receives completion events. It is called synchronously from
// RaiseEvent.
type Observer func(Event)

// SubscriptionID identifies an attached observer so it can be detached.
type SubscriptionID string

type subscription struct {
	id       SubscriptionID
	observer Observer
}

// observerList is the explicit observer registry owned by each variant.
// Delivery works on a snapshot so observers run without the lock held and
// may detach themselves.
type observerList struct {
	mu   sync.Mutex
	subs []subscription
}

func (l *observerList) subscribe(o Observer) SubscriptionID {
	if o == nil {
		return ""
	}
	id := SubscriptionID(uuid.NewString())

	l.mu.Lock()
	defer l.mu.Unlock()
	l.subs = append(l.subs, subscription{id: id, observer: o})
	return id
}

func (l *observerList) unsubscribe(id SubscriptionID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, s := range l.subs {
		if s.id == id {
			l.subs = append(l.subs[:i:i], l.subs[i+1:]...)
			return true
		}
	}
	return false
}

func (l *observerList) snapshot() []Observer {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.subs) == 0 {
		return nil
	}
	out := make([]Observer, len(l.subs))
	for i, s := range l.subs {
		out[i] = s.observer
	}
	return out
}
