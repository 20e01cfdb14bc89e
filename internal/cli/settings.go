package cli

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"featurecompare/internal/config"
	"featurecompare/internal/feature"
	"featurecompare/internal/output"
)

func newSettingsCommand(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "settings [key...]",
		Short: "List settings or describe individual keys",
		Long: `Without arguments, list the fixed settings table.
With arguments, describe each key the way the variant formats it.

Examples:
  featurecompare settings
  featurecompare settings --format table
  featurecompare settings EnableStuff NonExisting`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.comparison(app.Config.Variant)
			if err != nil {
				return err
			}

			if len(args) > 0 {
				for _, key := range args {
					app.Printer.Line(c.FormatSetting(key))
				}
				return nil
			}

			if !cmd.Flags().Changed("format") {
				format = app.Config.Output.Format
			}
			return printSettings(app, c.Settings(), format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", config.FormatText, "output format: text, table or yaml")
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return config.OutputFormats(), cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func printSettings(app *App, settings feature.Settings, format string) error {
	switch format {
	case config.FormatText:
		for _, s := range settings.Entries() {
			app.Printer.Line(fmt.Sprintf("%s=%s", s.Key, s.Value))
		}
	case config.FormatTable:
		rows := make([][]string, 0, settings.Len())
		for _, s := range settings.Entries() {
			rows = append(rows, []string{s.Key, s.Value, strconv.Itoa(utf8.RuneCountInString(s.Value))})
		}
		app.Printer.Table([]string{"Key", "Value", "Length"}, rows, output.AlignRight(2))
	case config.FormatYAML:
		return app.Printer.YAML(settingsNode(settings))
	default:
		return fmt.Errorf("unsupported format %q (expected one of %v)", format, config.OutputFormats())
	}
	return nil
}

// settingsNode builds a mapping node so the YAML keeps table order.
func settingsNode(settings feature.Settings) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, s := range settings.Entries() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: s.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Value: s.Value, Style: yaml.DoubleQuotedStyle},
		)
	}
	return node
}
