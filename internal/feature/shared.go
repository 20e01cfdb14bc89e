package feature

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// base holds what both variants need but express the same way.
type base struct {
	name      string
	logger    *zap.Logger
	delay     time.Duration
	now       func() time.Time
	observers *observerList
}

func newBase(name string, opts Options) base {
	opts = opts.withDefaults()
	return base{
		name:      name,
		logger:    opts.Logger.Named(name),
		delay:     opts.Delay,
		now:       opts.Now,
		observers: &observerList{},
	}
}

// Name returns the variant name, also used as the event sender.
func (b *base) Name() string {
	return b.name
}

// Subscribe attaches o and returns the ID to detach it with. A nil observer
// is ignored and gets an empty ID.
func (b *base) Subscribe(o Observer) SubscriptionID {
	return b.observers.subscribe(o)
}

// Unsubscribe detaches the observer registered under id and reports whether
// one was found.
func (b *base) Unsubscribe(id SubscriptionID) bool {
	return b.observers.unsubscribe(id)
}

func (b *base) event() Event {
	return Event{Sender: b.name, At: b.now()}
}

// logFailure writes err to logger and returns !letItThrow.
func logFailure(logger *zap.Logger, err error, letItThrow bool) bool {
	logger.Warn("operation failed",
		zap.Error(err),
		zap.Bool("rethrow", letItThrow),
	)
	return !letItThrow
}

// failOrWait fails with ErrRecovery, or waits delay to simulate work in
// flight. A cancelled ctx ends the wait early with its error.
func failOrWait(ctx context.Context, fail bool, delay time.Duration) error {
	if fail {
		return ErrRecovery
	}
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
