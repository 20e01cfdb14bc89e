package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"featurecompare/internal/feature"
)

func newWorkflowCommand(app *App) *cobra.Command {
	var throw bool

	cmd := &cobra.Command{
		Use:   "workflow",
		Short: "Run the guarded workflow once",
		Long: `Run the guarded workflow once with a printing observer attached.

The attempt step always fails and is absorbed. The recover step either waits
(--delay) or, with --throw, fails. The completion event is printed before any
recovery failure is reported; a recovery failure exits with status 1.

Examples:
  featurecompare workflow
  featurecompare workflow --throw --variant legacy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.comparison(app.Config.Variant)
			if err != nil {
				return err
			}

			id := c.Subscribe(func(e feature.Event) {
				app.Printer.Line(fmt.Sprintf("%s: operation completed", e.Sender))
			})
			defer c.Unsubscribe(id)

			err = c.RunWorkflow(cmd.Context(), throw)
			if err != nil {
				if !errors.Is(err, feature.ErrRecovery) {
					return fmt.Errorf("workflow: %w", err)
				}
				app.logger().Debug("workflow surfaced recovery failure", zap.String("variant", c.Name()), zap.Error(err))
				app.Printer.Failure("workflow failed: " + err.Error())
				cmd.SilenceUsage = true
				return NewExitError(1)
			}

			app.Printer.Success("workflow completed")
			return nil
		},
	}

	cmd.Flags().BoolVar(&throw, "throw", false, "fail in the recover step instead of waiting")

	return cmd
}
