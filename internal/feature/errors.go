package feature

import "errors"

// Sentinel errors for the guarded workflow.
var (
	// ErrInner is raised by the attempt step every time. RunWorkflow always
	// absorbs it, so callers of RunWorkflow never see it.
	ErrInner = errors.New("Evil exception!!!")

	// ErrRecovery is raised by FailOrWait when asked to fail. It is the only
	// failure RunWorkflow ever returns, and it is returned only after the
	// completion event has been delivered.
	ErrRecovery = errors.New("recovery failed")

	// ErrUnknownVariant is returned by New for names it does not recognize.
	ErrUnknownVariant = errors.New("unknown variant")
)
