package cli

import (
	"bytes"
	"context"
	"testing"

	"featurecompare/internal/config"
	"featurecompare/internal/feature"
	"featurecompare/internal/logging"
	"featurecompare/internal/output"
)

// MockComparison wraps a real variant and can replace its workflow outcome.
type MockComparison struct {
	feature.Comparison

	// WorkflowErr, when set, is returned by RunWorkflow after the real
	// workflow has run.
	WorkflowErr error

	// WorkflowCalls records the flag passed to each RunWorkflow call.
	WorkflowCalls []bool
}

func (m *MockComparison) RunWorkflow(ctx context.Context, failInRecover bool) error {
	m.WorkflowCalls = append(m.WorkflowCalls, failInRecover)
	err := m.Comparison.RunWorkflow(ctx, failInRecover)
	if m.WorkflowErr != nil {
		return m.WorkflowErr
	}
	return err
}

// MockFactory records which variants were built and with which options.
type MockFactory struct {
	// Built records every requested variant name in order.
	Built []string

	// Options records the options of the last build.
	Options feature.Options

	// Comparisons holds the mocks handed out, keyed by variant name.
	Comparisons map[string]*MockComparison

	// WorkflowErr is copied into every mock handed out.
	WorkflowErr error
}

func (f *MockFactory) New(name string, opts feature.Options) (feature.Comparison, error) {
	f.Built = append(f.Built, name)
	f.Options = opts

	c, err := feature.New(name, opts)
	if err != nil {
		return nil, err
	}
	if f.Comparisons == nil {
		f.Comparisons = make(map[string]*MockComparison)
	}
	m := &MockComparison{Comparison: c, WorkflowErr: f.WorkflowErr}
	f.Comparisons[name] = m
	return m, nil
}

// newTestApp returns an App that writes into the returned buffer and builds
// variants through factory. The workflow delay is disabled.
func newTestApp(t *testing.T, factory *MockFactory) (*App, *bytes.Buffer) {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Workflow.Delay = 0

	buf := &bytes.Buffer{}
	return &App{
		Config:        cfg,
		Logger:        logging.Test(t),
		Printer:       output.NewPrinterWithWriter(buf),
		NewComparison: factory.New,
	}, buf
}

// executeCommand runs the root command for app with args.
func executeCommand(app *App, args ...string) error {
	rootCmd := NewRootCommand(app)
	outBuf := &bytes.Buffer{}
	rootCmd.SetOut(outBuf)
	rootCmd.SetErr(outBuf)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}
