// Package feature implements the comparison contract twice, once per style.
//
// Both variants expose the same behavior: a fixed settings table with
// lookup-and-format, a power computation, and a guarded workflow that fails
// internally, recovers, notifies observers exactly once, and finally surfaces
// any failure hit while recovering.
//
// Key types:
//   - [Comparison] is the contract both variants implement
//   - [Legacy] spells everything out with explicit capture variables
//   - [Modern] uses deferred finalizers and composite literals
//   - [Settings] is the immutable, ordered settings table
//   - [Event] is the "operation completed" signal delivered to observers
//
// Use [New] to construct a variant by name, or [NewLegacy] / [NewModern]
// directly.
package feature

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// DefaultDelay is how long the recover step waits when it does not fail.
const DefaultDelay = 500 * time.Millisecond

// Variant names accepted by [New].
const (
	VariantLegacy = "legacy"
	VariantModern = "modern"
)

// Comparison is the contract shared by every variant.
//
// Implementations must behave identically; they differ only in how the Go
// code expressing that behavior is written.
type Comparison interface {
	// Name returns the variant name. It is used as the sender of events.
	Name() string

	// ReadOnly always reports true.
	ReadOnly() bool

	// ReadOnlyPropertyName returns the name of the ReadOnly accessor.
	ReadOnlyPropertyName() string

	// Subscribe attaches an observer to the completion signal.
	Subscribe(o Observer) SubscriptionID

	// Unsubscribe detaches the observer registered under id.
	// It reports whether a subscription was removed.
	Unsubscribe(id SubscriptionID) bool

	// Compute returns a raised to the power b.
	Compute(a, b float64) float64

	// FailOrWait returns [ErrRecovery] when fail is true, otherwise it waits
	// the configured delay and returns nil.
	FailOrWait(ctx context.Context, fail bool) error

	// Log writes err to the diagnostic sink and returns !letItThrow, which
	// callers use to decide whether to swallow the error.
	Log(err error, letItThrow bool) bool

	// RunWorkflow runs the guarded workflow. It returns the error raised
	// while recovering, if any, after every observer has been notified.
	RunWorkflow(ctx context.Context, failInRecover bool) error

	// RaiseEvent notifies all attached observers in registration order.
	RaiseEvent()

	// FailAndLog always returns [ErrInner] after logging it.
	FailAndLog() error

	// Settings returns the fixed settings table.
	Settings() Settings

	// FormatSetting describes the setting stored under key.
	FormatSetting(key string) string
}

// Options configures a variant.
//
// The zero value is usable: a nop logger, the [DefaultDelay], and the
// wall clock.
type Options struct {
	// Logger receives the diagnostic entries written by Log.
	Logger *zap.Logger

	// Delay is how long FailOrWait waits when it does not fail.
	// Zero means [DefaultDelay]; use a negative value to skip the wait.
	Delay time.Duration

	// Now stamps events. Defaults to time.Now.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Delay == 0 {
		o.Delay = DefaultDelay
	}
	if o.Delay < 0 {
		o.Delay = 0
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Variants returns the names accepted by [New], in presentation order.
func Variants() []string {
	return []string{VariantLegacy, VariantModern}
}

// New constructs the variant registered under name.
func New(name string, opts Options) (Comparison, error) {
	switch name {
	case VariantLegacy:
		return NewLegacy(opts), nil
	case VariantModern:
		return NewModern(opts), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
}
