package feature

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// Legacy implements [Comparison] the long-hand way: state lives in explicit
// variables, the finalizer is called by hand on every path, and the settings
// table is built one entry at a time.
type Legacy struct {
	base
	isReadOnly bool
}

var _ Comparison = (*Legacy)(nil)

// NewLegacy creates a [Legacy] variant.
func NewLegacy(opts Options) *Legacy {
	return &Legacy{
		base:       newBase(VariantLegacy, opts),
		isReadOnly: true,
	}
}

// ReadOnly reports the value of the isReadOnly field, which is always true.
func (l *Legacy) ReadOnly() bool {
	return l.isReadOnly
}

// ReadOnlyPropertyName returns the accessor name spelled out as a literal.
func (l *Legacy) ReadOnlyPropertyName() string {
	return "ReadOnly"
}

// Compute returns a raised to the power b.
func (l *Legacy) Compute(a, b float64) float64 {
	return math.Pow(a, b)
}

// RunWorkflow captures the outcome of each phase in its own variable, raises
// the event, and only then returns what recovery produced.
func (l *Legacy) RunWorkflow(ctx context.Context, failInRecover bool) error {
	attemptErr := l.FailAndLog()

	var recoverErr error
	if attemptErr != nil {
		// Held until after the event has been raised.
		recoverErr = l.FailOrWait(ctx, failInRecover)
	}

	l.RaiseEvent()

	if recoverErr != nil {
		return recoverErr
	}
	return nil
}

// FailOrWait returns [ErrRecovery] when fail is true, otherwise it waits the
// configured delay.
func (l *Legacy) FailOrWait(ctx context.Context, fail bool) error {
	if fail {
		return ErrRecovery
	}
	return failOrWait(ctx, false, l.delay)
}

// RaiseEvent notifies every attached observer in registration order using an
// indexed loop.
func (l *Legacy) RaiseEvent() {
	observers := l.observers.snapshot()
	if observers != nil {
		e := l.event()
		for i := 0; i < len(observers); i++ {
			observers[i](e)
		}
	}
}

// Log writes err to the diagnostic sink and returns !letItThrow.
func (l *Legacy) Log(err error, letItThrow bool) bool {
	return logFailure(l.logger, err, letItThrow)
}

// FailAndLog logs the failure itself and then hands it back unchanged.
func (l *Legacy) FailAndLog() error {
	rogue := true

	var err error
	if rogue {
		err = ErrInner
	}

	if err != nil {
		l.Log(err, true)
		return err
	}
	return nil
}

// Settings builds a fresh table on every call, one entry at a time.
func (l *Legacy) Settings() Settings {
	entries := make([]Setting, 0, 4)
	entries = append(entries, Setting{Key: "EnableStuff", Value: "True"})
	entries = append(entries, Setting{Key: "OffsetStuff", Value: "1234"})
	entries = append(entries, Setting{Key: "WidthStuff", Value: "12345"})
	entries = append(entries, Setting{Key: "HeightStuff", Value: "1234"})

	return mustSettings(entries...)
}

// FormatSetting describes key as "<key> => `<value>` with length <n>", or
// with "key not found" and -1 when key is blank or missing.
func (l *Legacy) FormatSetting(key string) string {
	settings := l.Settings()

	var value string
	found := false
	valueLength := -1

	if strings.TrimSpace(key) != "" {
		value, found = settings.Lookup(key)
	}
	if found {
		valueLength = utf8.RuneCountInString(value)
	} else {
		value = notFoundValue
	}

	return fmt.Sprintf("%[1]s => `%[2]s` with length %[3]d", key, value, valueLength)
}
