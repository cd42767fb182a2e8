// Command bigcalc evaluates arbitrary precision integer
// and rational arithmetic from the command line.
package main

import (
	"os"

	logging "github.com/ipfs/go-log/v2"
	"github.com/spf13/cobra"
)

var log = logging.Logger("bigcalc")

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bigcalc",
		Short: "Arbitrary precision integer and rational calculator",
		Long: `bigcalc evaluates exact integer and rational arithmetic.
Integers are decimal strings of the form [+-]?[0-9]+,
and rationals are written as n or n/d.
Negative operands must follow a "--" separator.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := cmd.Flags().GetString("log-level")
			if err != nil {
				return err
			}
			return logging.SetLogLevel("bigcalc", level)
		},
	}

	rootCmd.PersistentFlags().String("log-level", "error", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().Bool("json", false, "print results as JSON")

	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newSubCmd())
	rootCmd.AddCommand(newMulCmd())
	rootCmd.AddCommand(newDivCmd())
	rootCmd.AddCommand(newPowCmd())
	rootCmd.AddCommand(newGCDCmd())
	rootCmd.AddCommand(newFracCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
