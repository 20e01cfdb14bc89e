package showcase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"featurecompare/internal/feature"
)

// brokenComparison wraps a real variant and overrides RunWorkflow.
type brokenComparison struct {
	feature.Comparison
	workflowErr func(failInRecover bool) error
}

func (b *brokenComparison) RunWorkflow(ctx context.Context, failInRecover bool) error {
	return b.workflowErr(failInRecover)
}

func TestExecutor_Execute(t *testing.T) {
	for _, name := range feature.Variants() {
		t.Run(name, func(t *testing.T) {
			c, err := feature.New(name, feature.Options{Delay: -1})
			require.NoError(t, err)

			report, err := NewExecutor().Execute(context.Background(), c)

			require.NoError(t, err)
			assert.Equal(t, name, report.Variant)
			assert.Equal(t, 2, report.Events, "one event per workflow run")

			values := make(map[string]string, len(report.Results))
			for _, r := range report.Results {
				values[r.Step] = r.Value
			}
			assert.Equal(t, "ReadOnly", values["property-name"])
			assert.Equal(t, "true", values["read-only"])
			assert.Equal(t, "16", values["compute"])
			assert.Equal(t, "completed", values["workflow"])
			assert.Equal(t, "EnableStuff => `True` with length 4", values["setting:EnableStuff"])
			assert.Equal(t, "NonExisting => `key not found` with length -1", values["setting:NonExisting"])
			assert.Equal(t, "NullValue => `key not found` with length -1", values["setting:NullValue"])
		})
	}
}

func TestExecutor_Execute_RecordsExpectedFailure(t *testing.T) {
	c := feature.NewLegacy(feature.Options{Delay: -1})

	report, err := NewExecutor().Execute(context.Background(), c)
	require.NoError(t, err)

	var failing *Result
	for i := range report.Results {
		if report.Results[i].Step == "workflow-failing" {
			failing = &report.Results[i]
		}
	}
	require.NotNil(t, failing)
	assert.ErrorIs(t, failing.Err, feature.ErrRecovery)
}

func TestExecutor_Execute_DetachesObserver(t *testing.T) {
	c := feature.NewModern(feature.Options{Delay: -1})

	_, err := NewExecutor().Execute(context.Background(), c)
	require.NoError(t, err)

	// Nothing is attached any more, so a further run must not be counted
	// anywhere; the only observer we can check is our own.
	var after int
	c.Subscribe(func(feature.Event) { after++ })
	require.NoError(t, c.RunWorkflow(context.Background(), false))
	assert.Equal(t, 1, after)
}

func TestExecutor_Execute_ProgressCallback(t *testing.T) {
	c := feature.NewModern(feature.Options{Delay: -1})

	var names []string
	var lastTotal int
	e := NewExecutor()
	e.SetProgressCallback(func(stepIndex, totalSteps int, step string) {
		assert.Equal(t, len(names)+1, stepIndex)
		lastTotal = totalSteps
		names = append(names, step)
	})

	_, err := e.Execute(context.Background(), c)
	require.NoError(t, err)

	assert.Equal(t, len(Steps()), lastTotal)
	assert.Equal(t, []string{
		"property-name", "read-only", "compute", "workflow", "workflow-failing",
		"setting:EnableStuff", "setting:NonExisting", "setting:NullValue",
	}, names)
}

func TestExecutor_Execute_FailFast(t *testing.T) {
	tests := []struct {
		name         string
		workflowErr  func(bool) error
		wantStep     string
		wantResults  int
		wantContains string
	}{
		{
			name: "plain workflow fails",
			workflowErr: func(bool) error {
				return errors.New("disk on fire")
			},
			wantStep:     "workflow",
			wantResults:  3,
			wantContains: "disk on fire",
		},
		{
			name: "failing workflow succeeds",
			workflowErr: func(bool) error {
				return nil
			},
			wantStep:     "workflow-failing",
			wantResults:  4,
			wantContains: "got success",
		},
		{
			name: "failing workflow fails the wrong way",
			workflowErr: func(fail bool) error {
				if fail {
					return feature.ErrInner
				}
				return nil
			},
			wantStep:     "workflow-failing",
			wantResults:  4,
			wantContains: "Evil exception!!!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &brokenComparison{
				Comparison:  feature.NewModern(feature.Options{Delay: -1}),
				workflowErr: tt.workflowErr,
			}

			report, err := NewExecutor().Execute(context.Background(), c)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "step "+tt.wantStep)
			assert.Contains(t, err.Error(), tt.wantContains)
			assert.Len(t, report.Results, tt.wantResults)
		})
	}
}
