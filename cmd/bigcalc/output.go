package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// result is a named value printed by a command.
type result struct {
	Name  string
	Value any
}

// printResults prints results one per line,
// or as a single JSON object if --json is set.
func printResults(cmd *cobra.Command, results ...result) error {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !asJSON {
		for _, r := range results {
			if len(results) == 1 {
				fmt.Fprintln(out, r.Value)
			} else {
				fmt.Fprintf(out, "%s: %v\n", r.Name, r.Value)
			}
		}
		return nil
	}

	obj := make(map[string]any, len(results))
	for _, r := range results {
		obj[r.Name] = r.Value
	}
	b, err := json.Marshal(obj)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(b))
	return nil
}
