package commands

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"safelens/internal/domain"
)

func vaultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Browse recorded evidence",
	}
	cmd.AddCommand(vaultListCmd(), vaultPlayCmd(), vaultDeleteCmd())
	return cmd
}

func vaultListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List evidence, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := appCtx.Vault.List()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, "Your evidence vault is empty.")
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%d\t%s\t%s\n", e.ID, e.Timestamp, e.Note)
			}
			return nil
		},
	}
}

func parseEntryID(s string) (domain.EntryID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &domain.ValidationError{Field: "id", Message: "must be a numeric entry id"}
	}
	return domain.EntryID(n), nil
}

// vault play <id>: write the recording to a WAV file.
func vaultPlayCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "play <id>",
		Short: "Export a recording as a WAV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEntryID(args[0])
			if err != nil {
				return err
			}
			audio, err := appCtx.Vault.Play(id)
			if err != nil {
				return err
			}
			if outPath == "" {
				outPath = fmt.Sprintf("evidence-%d.wav", id)
			}
			if err := os.WriteFile(outPath, audio, 0o600); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", outPath, len(audio))
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default evidence-<id>.wav)")
	return cmd
}

// vault delete <id>: remove one entry after confirmation.
func vaultDeleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Permanently delete a recording",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseEntryID(args[0])
			if err != nil {
				return err
			}
			if !yes {
				fmt.Fprintf(cmd.OutOrStdout(), "Delete entry %d permanently? [y/N] ", id)
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
					fmt.Fprintln(cmd.OutOrStdout(), "Kept.")
					return nil
				}
			}
			if err := appCtx.Vault.Delete(id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted.")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation")
	return cmd
}
