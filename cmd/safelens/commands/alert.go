package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	alertsvc "safelens/internal/services/alert"
)

func alertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alert",
		Short: "Send an emergency alert to the trusted contact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := appCtx.Alerts.Trigger(cmd.Context(), alertsvc.ManualMessage)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Alert sent to %s via %s.\n", out.Message.RecipientPhone, out.Channel)
			if !out.Location.Available {
				fmt.Fprintln(cmd.OutOrStdout(), "Location was unavailable.")
			}
			return nil
		},
	}
}
