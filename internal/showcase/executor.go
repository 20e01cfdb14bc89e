// Package showcase drives a [feature.Comparison] through the demo sequence.
//
// The showcase package provides [Executor], which attaches an observer, runs every
// step of the demo in order (property name, read-only flag, compute, the
// workflow with and without a recovery failure, three settings lookups), and
// detaches the observer again. Each step produces a [Result] that the caller
// renders.
//
// Key concepts:
//   - Steps are listed by [Steps] and run in that order
//   - A step whose outcome differs from what the demo expects stops the run
//   - Progress can be tracked via [ProgressCallback]
package showcase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"featurecompare/internal/feature"
)

// Step is a single named stage of the showcase.
type Step struct {
	// Name identifies the step in progress output.
	Name string

	// Label is the human-readable description printed next to the value.
	Label string

	// run performs the step and returns its printable value.
	run func(ctx context.Context, c feature.Comparison) (string, error)

	// wantErr is the error the step must produce, or nil if it must succeed.
	wantErr error
}

// Result is the outcome of one [Step].
type Result struct {
	Step  string
	Label string
	Value string

	// Err is what the step returned. For steps that are expected to fail it
	// holds that expected error.
	Err error
}

// Report is everything one showcase run produced.
type Report struct {
	// Variant is the name of the comparison that was run.
	Variant string

	// Results holds one entry per completed step, in order.
	Results []Result

	// Events is the number of completion events observed while running.
	Events int
}

// ProgressCallback is invoked before each step begins execution.
//
// The callback receives stepIndex (1-based), totalSteps count, and the step name.
type ProgressCallback func(stepIndex, totalSteps int, step string)

// settingKeys are looked up in order at the end of the showcase. The last two
// are not in the table.
var settingKeys = []string{"EnableStuff", "NonExisting", "NullValue"}

// Steps returns the showcase sequence.
func Steps() []Step {
	steps := []Step{
		{
			Name:  "property-name",
			Label: "Is readonly property name",
			run: func(_ context.Context, c feature.Comparison) (string, error) {
				return c.ReadOnlyPropertyName(), nil
			},
		},
		{
			Name:  "read-only",
			Label: "Is readonly",
			run: func(_ context.Context, c feature.Comparison) (string, error) {
				return strconv.FormatBool(c.ReadOnly()), nil
			},
		},
		{
			Name:  "compute",
			Label: "Compute",
			run: func(_ context.Context, c feature.Comparison) (string, error) {
				return strconv.FormatFloat(c.Compute(2, 4), 'g', -1, 64), nil
			},
		},
		{
			Name:  "workflow",
			Label: "Workflow",
			run: func(ctx context.Context, c feature.Comparison) (string, error) {
				if err := c.RunWorkflow(ctx, false); err != nil {
					return "", err
				}
				return "completed", nil
			},
		},
		{
			Name:  "workflow-failing",
			Label: "Workflow with recovery failure",
			run: func(ctx context.Context, c feature.Comparison) (string, error) {
				err := c.RunWorkflow(ctx, true)
				return "expected failure", err
			},
			wantErr: feature.ErrRecovery,
		},
	}

	for _, key := range settingKeys {
		key := key // per-iteration copy (go directive < 1.22)
		steps = append(steps, Step{
			Name:  "setting:" + key,
			Label: "Setting value for " + key,
			run: func(_ context.Context, c feature.Comparison) (string, error) {
				return c.FormatSetting(key), nil
			},
		})
	}
	return steps
}

// Executor runs the showcase against one comparison at a time.
//
// Use [NewExecutor] to create an instance and [Executor.Execute] to run it.
type Executor struct {
	steps            []Step
	progressCallback ProgressCallback
}

// NewExecutor creates an Executor for the standard [Steps].
func NewExecutor() *Executor {
	return &Executor{steps: Steps()}
}

// SetProgressCallback configures an optional progress callback.
func (e *Executor) SetProgressCallback(cb ProgressCallback) {
	e.progressCallback = cb
}

// Execute runs every step against c.
//
// An observer counting completion events is attached for the duration of the
// run and detached before Execute returns. Execute uses fail-fast behavior:
// the first step whose outcome is not the expected one stops the run, and the
// report holds the results gathered so far.
func (e *Executor) Execute(ctx context.Context, c feature.Comparison) (*Report, error) {
	report := &Report{Variant: c.Name()}

	id := c.Subscribe(func(feature.Event) { report.Events++ })
	defer c.Unsubscribe(id)

	totalSteps := len(e.steps)
	for i, step := range e.steps {
		if e.progressCallback != nil {
			e.progressCallback(i+1, totalSteps, step.Name)
		}

		value, err := step.run(ctx, c)
		if err := checkOutcome(step, err); err != nil {
			return report, fmt.Errorf("%s: step %s: %w", c.Name(), step.Name, err)
		}

		report.Results = append(report.Results, Result{
			Step:  step.Name,
			Label: step.Label,
			Value: value,
			Err:   err,
		})
	}

	return report, nil
}

func checkOutcome(step Step, err error) error {
	switch {
	case step.wantErr == nil:
		return err
	case err == nil:
		return fmt.Errorf("expected %v, got success", step.wantErr)
	case !errors.Is(err, step.wantErr):
		return fmt.Errorf("expected %v: %w", step.wantErr, err)
	default:
		return nil
	}
}
