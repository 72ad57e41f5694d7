package commands

import (
	"github.com/spf13/cobra"

	"safelens/internal/ui"
)

func keypadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keypad",
		Short: "Open the calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps := ui.Deps{
				Contacts: appCtx.Contacts,
				Vault:    appCtx.Vault,
				Alerts:   appCtx.Alerts,
			}
			return ui.Run(cmd.Context(), deps, appCtx.NewKeypad)
		},
	}
}
