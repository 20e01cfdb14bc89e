package feature

import (
	"context"
	"math"
	"unicode/utf8"
)

const readOnlyPropertyName = "ReadOnly"

// Modern implements [Comparison] with the shorter idioms: a deferred
// finalizer over a named result, a filter-style log check, and a literal
// settings table.
type Modern struct {
	base
}

var _ Comparison = (*Modern)(nil)

// NewModern creates a [Modern] variant.
func NewModern(opts Options) *Modern {
	return &Modern{base: newBase(VariantModern, opts)}
}

// ReadOnly always reports true.
func (m *Modern) ReadOnly() bool { return true }

// ReadOnlyPropertyName returns the name of the ReadOnly accessor.
func (m *Modern) ReadOnlyPropertyName() string { return readOnlyPropertyName }

// Compute returns a raised to the power b.
func (m *Modern) Compute(a, b float64) float64 { return math.Pow(a, b) }

// RunWorkflow defers the event so it fires on every path before err
// reaches the caller.
func (m *Modern) RunWorkflow(ctx context.Context, failInRecover bool) (err error) {
	defer m.RaiseEvent()

	if m.FailAndLog() != nil {
		err = m.FailOrWait(ctx, failInRecover)
	}
	return err
}

// FailOrWait returns [ErrRecovery] when fail is true, otherwise it waits the
// configured delay.
func (m *Modern) FailOrWait(ctx context.Context, fail bool) error {
	return failOrWait(ctx, fail, m.delay)
}

// RaiseEvent notifies every attached observer in registration order.
func (m *Modern) RaiseEvent() {
	e := m.event()
	for _, o := range m.observers.snapshot() {
		o(e)
	}
}

// Log writes err to the diagnostic sink and returns !letItThrow.
func (m *Modern) Log(err error, letItThrow bool) bool {
	return logFailure(m.logger, err, letItThrow)
}

// FailAndLog runs the log step as a filter. Asking it to let the error
// through makes it return false, so the error is never swallowed here.
func (m *Modern) FailAndLog() error {
	if rogue := true; rogue {
		err := ErrInner
		if m.Log(err, true) {
			return nil
		}
		return err
	}
	return nil
}

var modernSettings = mustSettings(
	Setting{Key: "EnableStuff", Value: "True"},
	Setting{Key: "OffsetStuff", Value: "1234"},
	Setting{Key: "WidthStuff", Value: "12345"},
	Setting{Key: "HeightStuff", Value: "1234"},
)

// Settings returns a shared view; [Settings] never exposes its internals.
func (m *Modern) Settings() Settings { return modernSettings }

// FormatSetting describes key, returning early for blank and missing keys.
func (m *Modern) FormatSetting(key string) string {
	if isBlank(key) {
		return formatSetting(key, notFoundValue, -1)
	}
	if value, ok := m.Settings().Lookup(key); ok {
		return formatSetting(key, value, utf8.RuneCountInString(value))
	}
	return formatSetting(key, notFoundValue, -1)
}
