package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newComputeCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "compute <a> <b>",
		Short: "Raise a to the power b",
		Long: `Raise a to the power b using the selected variant.
Negative operands are accepted as they are.

Examples:
  featurecompare compute 2 4
  featurecompare compute -2 3
  featurecompare compute 2 -1 --variant legacy`,
		// Flags are parsed in RunE so that "-2" reaches us as a number
		// instead of an unknown shorthand.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			operands, err := parseComputeArgs(cmd, args)
			if err != nil {
				return err
			}
			if help, _ := cmd.Flags().GetBool("help"); help {
				return cmd.Help()
			}
			if err := app.applyRootFlags(cmd); err != nil {
				return err
			}
			if len(operands) != 2 {
				return fmt.Errorf("accepts 2 arg(s), received %d", len(operands))
			}

			a, err := strconv.ParseFloat(operands[0], 64)
			if err != nil {
				return fmt.Errorf("invalid base %q: %w", operands[0], err)
			}
			b, err := strconv.ParseFloat(operands[1], 64)
			if err != nil {
				return fmt.Errorf("invalid exponent %q: %w", operands[1], err)
			}

			c, err := app.comparison(app.Config.Variant)
			if err != nil {
				return err
			}

			app.Printer.Line(strconv.FormatFloat(c.Compute(a, b), 'g', -1, 64))
			return nil
		},
	}
}

// parseComputeArgs separates operands from flags and parses the flags into
// cmd's flag set, inherited flags included. Anything that reads as a number
// is an operand, as is everything after "--".
func parseComputeArgs(cmd *cobra.Command, args []string) ([]string, error) {
	// Merges the root's persistent flags into cmd.Flags().
	_ = cmd.InheritedFlags()
	flags := cmd.Flags()

	var operands, flagArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			operands = append(operands, args[i+1:]...)
			i = len(args)
		case !strings.HasPrefix(arg, "-") || isNumber(arg):
			operands = append(operands, arg)
		default:
			flagArgs = append(flagArgs, arg)
			if takesValue(flags, arg) && i+1 < len(args) {
				i++
				flagArgs = append(flagArgs, args[i])
			}
		}
	}

	if err := flags.Parse(flagArgs); err != nil {
		return nil, err
	}
	return operands, nil
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// takesValue reports whether arg names a flag whose value is the next
// argument, as in "--variant legacy" or "-V legacy".
func takesValue(flags *pflag.FlagSet, arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	var f *pflag.Flag
	if name, ok := strings.CutPrefix(arg, "--"); ok {
		f = flags.Lookup(name)
	} else if len(arg) == 2 {
		f = flags.ShorthandLookup(arg[1:])
	}
	return f != nil && f.NoOptDefVal == ""
}
