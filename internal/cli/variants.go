package cli

import (
	"github.com/spf13/cobra"

	"featurecompare/internal/feature"
)

func newVariantsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "variants",
		Short: "List available variants",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range feature.Variants() {
				line := name
				if name == app.Config.Variant {
					line += " (selected)"
				}
				app.Printer.Line(line)
			}
		},
	}
}
