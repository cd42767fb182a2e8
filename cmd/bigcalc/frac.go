package main

import (
	"github.com/pkg/errors"
	"github.com/sp301415/exact/rational"
	"github.com/spf13/cobra"
)

func newFracCmd() *cobra.Command {
	fracCmd := &cobra.Command{
		Use:   "frac (add|sub|mul|div) x y",
		Short: "Evaluate exact rational arithmetic",
		Long: `Evaluate exact rational arithmetic on two fractions n or n/d.
The result is printed in lowest terms,
followed by its decimal expansion if --precision is positive.`,
		Args: cobra.ExactArgs(3),
		RunE: runFrac,
	}

	fracCmd.Flags().Int("precision", 0, "number of fractional digits of the decimal expansion")

	return fracCmd
}

func runFrac(cmd *cobra.Command, args []string) error {
	precision, err := cmd.Flags().GetInt("precision")
	if err != nil {
		return err
	}

	x, err := rational.Parse(args[1])
	if err != nil {
		return errors.Wrap(err, "first operand")
	}
	y, err := rational.Parse(args[2])
	if err != nil {
		return errors.Wrap(err, "second operand")
	}

	var z rational.Rat
	switch args[0] {
	case "add":
		z = x.Add(y)
	case "sub":
		z = x.Sub(y)
	case "mul":
		z = x.Mul(y)
	case "div":
		if z, err = x.Quo(y); err != nil {
			return err
		}
	default:
		return errors.Errorf("unknown operation %q", args[0])
	}
	log.Debugf("%v %s %v = %v", x, args[0], y, z)

	if precision <= 0 {
		return printResults(cmd, result{"fraction", z})
	}
	return printResults(cmd, result{"fraction", z}, result{"decimal", z.AsDecimal(precision)})
}
