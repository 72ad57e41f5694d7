package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func contactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Manage the trusted contact",
	}
	cmd.AddCommand(contactSetCmd(), contactShowCmd(), contactRemoveCmd())
	return cmd
}

// contact set <name> <phone>: replace the trusted contact.
func contactSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <name> <phone>",
		Short: "Save the trusted contact, replacing any existing one",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Contacts.SetContact(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Trusted contact saved.")
			return nil
		},
	}
}

func contactShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the trusted contact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ok, err := appCtx.Contacts.GetContact()
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "No trusted contact set.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", c.Name, c.Phone)
			return nil
		},
	}
}

func contactRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "Remove the trusted contact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Contacts.ClearContact(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Trusted contact removed.")
			return nil
		},
	}
}
