package commands

import (
	"bufio"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"safelens/internal/domain"
)

// record: capture audio until Enter (or --duration) and store it.
func recordCmd() *cobra.Command {
	var (
		note     string
		duration time.Duration
		discard  bool
	)
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record audio evidence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session := appCtx.Capture
			out := cmd.OutOrStdout()

			if err := session.Start(cmd.Context()); err != nil {
				if errors.Is(err, domain.ErrPermissionDenied) {
					return fmt.Errorf("microphone access denied; set capture.source in config.yaml: %w", err)
				}
				return err
			}

			if duration > 0 {
				fmt.Fprintf(out, "Recording for %s...\n", duration)
				select {
				case <-time.After(duration):
				case <-cmd.Context().Done():
				}
			} else {
				fmt.Fprintln(out, "Recording... press Enter to stop.")
				stopped := make(chan struct{})
				go func() {
					_, _ = bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
					close(stopped)
				}()
				select {
				case <-stopped:
				case <-cmd.Context().Done():
				}
			}

			rec, err := session.Stop()
			if err != nil {
				return err
			}
			if session.Mode() == domain.SaveAsDownload {
				fmt.Fprintf(out, "Saved %s\n", rec.Path)
				return nil
			}
			if discard {
				if err := session.Discard(); err != nil {
					return err
				}
				fmt.Fprintln(out, "Recording discarded.")
				return nil
			}
			entry, err := session.Save(note)
			if err != nil {
				_ = session.Discard()
				return err
			}
			fmt.Fprintf(out, "Saved to vault as entry %d.\n", entry.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&note, "note", "n", "", "note stored with the recording")
	cmd.Flags().DurationVarP(&duration, "duration", "d", 0, "stop after this long instead of waiting for Enter")
	cmd.Flags().BoolVar(&discard, "discard", false, "discard the recording instead of saving it")
	return cmd
}
