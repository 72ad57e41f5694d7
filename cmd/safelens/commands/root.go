package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"safelens/internal/app"
	"safelens/internal/logging"
)

var (
	home       string
	configPath string
	backendURL string
	verbose    bool

	appCtx *app.Wire
	logger *zap.Logger
)

// Execute runs the CLI with the process arguments.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	defer closeApp()
	return newRootCmd().ExecuteContext(ctx)
}

// closeApp releases whatever PersistentPreRunE opened, whether or not the
// command succeeded.
func closeApp() {
	if appCtx != nil {
		if err := appCtx.Close(); err != nil {
			logger.Warn("close store", zap.Error(err))
		}
		appCtx = nil
	}
	if logger != nil {
		_ = logger.Sync()
		logger = nil
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "safelens",
		Short:         "Calculator",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".safelens")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			cfg, err := app.LoadConfig(home, configPath)
			if err != nil {
				return err
			}
			if backendURL != "" {
				cfg.Backend.URL = backendURL
			}
			if verbose {
				cfg.Logging.Level = "debug"
			}

			logger, err = logging.New(logging.Config{
				Level:       cfg.Logging.Level,
				OutputPaths: []string{cfg.LogFile()},
			})
			if err != nil {
				return fmt.Errorf("open log: %w", err)
			}

			appCtx, err = app.NewWire(cfg, logger)
			if err != nil {
				return err
			}
			logger.Debug("command started", zap.String("command", cmd.CommandPath()))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.safelens)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <home>/config.yaml)")
	root.PersistentFlags().StringVar(&backendURL, "backend", "", "backend base URL (e.g. http://127.0.0.1:8000)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(keypadCmd(), contactCmd(), vaultCmd(), recordCmd(), alertCmd(), analyzeCmd())
	return root
}
