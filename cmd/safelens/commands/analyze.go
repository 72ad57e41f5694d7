package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// analyze <text...>: classify a message and check for the trigger phrase.
func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <text...>",
		Short: "Analyze a message for signs of danger",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			res, err := appCtx.Analyzer.Analyze(cmd.Context(), strings.Join(args, " "))

			// The trigger alert is independent of the classification result.
			if res.TriggerMatched {
				if res.AlertErr != nil {
					fmt.Fprintf(out, "Trigger phrase detected, but the alert failed: %v\n", res.AlertErr)
				} else {
					fmt.Fprintln(out, "Trigger phrase detected. Alert sent.")
				}
			}
			if err != nil {
				return err
			}

			a := res.Analysis
			fmt.Fprintf(out, "Label: %s\nScore: %.1f\n", a.Label, a.Score)
			if len(a.Keywords) == 0 {
				fmt.Fprintln(out, "Keywords: None")
				return nil
			}
			fmt.Fprintf(out, "Keywords: %s\n", strings.Join(a.Keywords, ", "))
			return nil
		},
	}
}
