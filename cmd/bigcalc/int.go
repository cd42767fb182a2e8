package main

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sp301415/exact/bigint"
	"github.com/spf13/cobra"
)

// parseInts parses every argument as a bigint.Int.
func parseInts(args []string) ([]bigint.Int, error) {
	xs := make([]bigint.Int, len(args))
	for i, arg := range args {
		x, err := bigint.Parse(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i+1)
		}
		xs[i] = x
	}
	return xs, nil
}

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add x y...",
		Short: "Print the sum of integers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseInts(args)
			if err != nil {
				return err
			}

			var sum bigint.Int
			for _, x := range xs {
				sum.AddAssign(x)
			}
			return printResults(cmd, result{"sum", sum})
		},
	}
}

func newSubCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sub x y",
		Short: "Print x - y",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseInts(args)
			if err != nil {
				return err
			}
			return printResults(cmd, result{"difference", xs[0].Sub(xs[1])})
		},
	}
}

func newMulCmd() *cobra.Command {
	mulCmd := &cobra.Command{
		Use:   "mul x y...",
		Short: "Print the product of integers",
		Long: `Print the product of integers.
The multiplication method is chosen by operand size,
and can be tuned with --schoolbook-threshold and --ntt-threshold.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runMul,
	}

	mulCmd.Flags().Int("schoolbook-threshold", bigint.DefaultParametersLiteral.SchoolbookThreshold,
		"largest shorter operand length in limbs for schoolbook multiplication")
	mulCmd.Flags().Int("ntt-threshold", bigint.DefaultParametersLiteral.NTTThreshold,
		"smallest transform degree for NTT multiplication (power of two)")

	return mulCmd
}

func runMul(cmd *cobra.Command, args []string) error {
	schoolbookThreshold, err := cmd.Flags().GetInt("schoolbook-threshold")
	if err != nil {
		return err
	}
	nttThreshold, err := cmd.Flags().GetInt("ntt-threshold")
	if err != nil {
		return err
	}

	paramsLiteral := bigint.ParametersLiteral{
		SchoolbookThreshold: schoolbookThreshold,
		NTTThreshold:        nttThreshold,
		NTTLogModulus:       bigint.DefaultParametersLiteral.NTTLogModulus,
	}
	params, err := compileParameters(paramsLiteral)
	if err != nil {
		return err
	}
	multiplier := bigint.NewMultiplier(params)

	xs, err := parseInts(args)
	if err != nil {
		return err
	}

	now := time.Now()
	prod := bigint.New(1)
	for _, x := range xs {
		prod = multiplier.Mul(prod, x)
	}
	log.Debugf("multiplied %d operands in %v", len(xs), time.Since(now))

	return printResults(cmd, result{"product", prod})
}

// compileParameters compiles paramsLiteral,
// turning the panic of an invalid literal into an error.
func compileParameters(paramsLiteral bigint.ParametersLiteral) (params bigint.Parameters, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("invalid multiplication parameters: %v", r)
		}
	}()
	return paramsLiteral.Compile(), nil
}

func newDivCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "div x y",
		Short: "Print the truncated quotient and remainder of x / y",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseInts(args)
			if err != nil {
				return err
			}

			now := time.Now()
			q, r, err := xs[0].QuoRem(xs[1])
			if err != nil {
				return err
			}
			log.Debugf("divided %d limbs by %d limbs in %v", xs[0].Len(), xs[1].Len(), time.Since(now))

			return printResults(cmd, result{"quotient", q}, result{"remainder", r})
		},
	}
}

func newPowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pow x exp",
		Short: "Print x raised to a non-negative exponent",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseInts(args)
			if err != nil {
				return err
			}

			exp, ok := xs[1].Int64()
			if !ok || exp != int64(int(exp)) {
				return errors.Errorf("exponent %v is too large", xs[1])
			}

			now := time.Now()
			p, err := bigint.Pow(xs[0], int(exp))
			if err != nil {
				return err
			}
			log.Debugf("computed power with %d limbs in %v", p.Len(), time.Since(now))

			return printResults(cmd, result{"power", p})
		},
	}
}

func newGCDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gcd x y...",
		Short: "Print the greatest common divisor of integers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseInts(args)
			if err != nil {
				return err
			}

			var g bigint.Int
			for _, x := range xs {
				g = bigint.GCD(g, x)
			}
			return printResults(cmd, result{"gcd", g})
		},
	}
}
