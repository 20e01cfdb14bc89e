package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"featurecompare/internal/feature"
	"featurecompare/internal/showcase"
)

func newShowcaseCommand(app *App) *cobra.Command {
	var (
		all     bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "showcase",
		Short: "Run the demo sequence against every variant",
		Long: `Run the demo sequence: property name, read-only flag, compute(2, 4),
the workflow without and with a recovery failure, and three settings lookups.

By default every variant runs in turn. Use --all=false to run only the
variant selected with --variant.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := feature.Variants()
			if !all {
				names = []string{app.Config.Variant}
			}

			executor := showcase.NewExecutor()
			if verbose {
				executor.SetProgressCallback(func(stepIndex, totalSteps int, step string) {
					app.Printer.Step(stepIndex, totalSteps, step)
				})
			}

			for _, name := range names {
				c, err := app.comparison(name)
				if err != nil {
					return err
				}

				app.Printer.Header(name)
				report, err := executor.Execute(cmd.Context(), c)
				printReport(app, report)
				if err != nil {
					app.Printer.Failure(err.Error())
					cmd.SilenceUsage = true
					return NewExitError(1)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", true, "run every variant")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print each step before it runs")

	return cmd
}

func printReport(app *App, report *showcase.Report) {
	if report == nil {
		return
	}
	for _, r := range report.Results {
		if r.Err != nil {
			app.Printer.Success(fmt.Sprintf("%s: %s", r.Label, r.Value))
			continue
		}
		app.Printer.Field(r.Label, r.Value)
	}
	app.Printer.Field("Completion events", report.Events)
	app.Printer.Divider()
}
