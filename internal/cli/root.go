// Package cli implements the featurecompare command line.
//
// Commands are built with Cobra and share an [App] holding the loaded
// configuration, the diagnostic logger, the output printer and the factory
// used to construct comparison variants. Tests build an App by hand and run
// commands through [NewRootCommand].
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"featurecompare/internal/config"
	"featurecompare/internal/feature"
	"featurecompare/internal/logging"
	"featurecompare/internal/output"
)

// ComparisonFactory constructs the variant registered under name.
type ComparisonFactory func(name string, opts feature.Options) (feature.Comparison, error)

// App holds the dependencies shared by every command.
type App struct {
	Config  *config.Config
	Logger  *zap.Logger
	Printer *output.Printer

	// NewComparison defaults to [feature.New] when nil.
	NewComparison ComparisonFactory

	flags *rootFlags
}

// ExecuteResult is the outcome of running the root command.
type ExecuteResult struct {
	ExitCode int
	Err      error
}

// NewApp wires an App from cfg with a logger built from cfg.Log. Command
// output goes to out.
func NewApp(cfg *config.Config, out io.Writer) (*App, error) {
	logger, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return nil, err
	}
	return &App{
		Config:        cfg,
		Logger:        logger,
		Printer:       output.NewPrinterWithWriter(out),
		NewComparison: feature.New,
	}, nil
}

// comparison builds the named variant with the app's logger and delay.
func (app *App) comparison(name string) (feature.Comparison, error) {
	factory := app.NewComparison
	if factory == nil {
		factory = feature.New
	}
	delay := app.Config.Workflow.Delay
	if delay == 0 {
		// A zero delay from config means "don't wait", not "use the default".
		delay = -1
	}
	return factory(name, feature.Options{Logger: app.logger(), Delay: delay})
}

func (app *App) logger() *zap.Logger {
	if app.Logger == nil {
		return logging.Nop()
	}
	return app.Logger
}

// rootFlags holds the values of the persistent flags defined on the root
// command.
type rootFlags struct {
	variant string
	delay   time.Duration
}

// applyRootFlags copies persistent flags set on cmd into the config and
// validates the result.
func (app *App) applyRootFlags(cmd *cobra.Command) error {
	if app.flags != nil {
		if cmd.Flags().Changed("variant") {
			app.Config.Variant = app.flags.variant
		}
		if cmd.Flags().Changed("delay") {
			app.Config.Workflow.Delay = app.flags.delay
		}
	}
	if err := app.Config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if !slices.Contains(feature.Variants(), app.Config.Variant) {
		return fmt.Errorf("%w: %q (available: %v)", feature.ErrUnknownVariant, app.Config.Variant, feature.Variants())
	}
	return nil
}

// NewRootCommand builds the featurecompare command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	app.flags = &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "featurecompare",
		Short: "Compare two implementations of the same small contract",
		Long: `featurecompare runs one contract implemented twice: a legacy variant
written long-hand and a modern variant using the shorter idioms.
Both must behave identically.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.applyRootFlags(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&app.flags.variant, "variant", "V", app.Config.Variant, "variant used by single-variant commands")
	rootCmd.PersistentFlags().DurationVar(&app.flags.delay, "delay", app.Config.Workflow.Delay, "simulated work duration in the workflow")

	rootCmd.AddCommand(
		newComputeCommand(app),
		newSettingsCommand(app),
		newWorkflowCommand(app),
		newShowcaseCommand(app),
		newVariantsCommand(app),
	)

	return rootCmd
}

// RunWithConfig runs the root command with args against cfg, writing command
// output to out.
func RunWithConfig(ctx context.Context, args []string, cfg *config.Config, out io.Writer) ExecuteResult {
	app, err := NewApp(cfg, out)
	if err != nil {
		return ExecuteResult{ExitCode: 1, Err: err}
	}
	defer func() { _ = app.Logger.Sync() }()

	return run(ctx, NewRootCommand(app), args)
}

func run(ctx context.Context, cmd *cobra.Command, args []string) ExecuteResult {
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		if code, ok := IsExitError(err); ok {
			return ExecuteResult{ExitCode: code, Err: err}
		}
		return ExecuteResult{ExitCode: 1, Err: err}
	}
	return ExecuteResult{}
}

// Execute loads configuration, runs the command line and exits the process.
func Execute() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	result := RunWithConfig(context.Background(), os.Args[1:], cfg, os.Stdout)
	if result.Err != nil {
		if _, ok := IsExitError(result.Err); !ok {
			fmt.Fprintln(os.Stderr, "Error:", result.Err)
		}
	}
	os.Exit(result.ExitCode)
}
