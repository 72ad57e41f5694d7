package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"safelens/internal/logging"
	"safelens/internal/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "safelens-api:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := server.ConfigFromEnv()
	if err != nil {
		return err
	}
	log, err := logging.New(logging.Config{Level: cfg.LogLevel, OutputPaths: []string{"stdout"}})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting SafeLens API",
		zap.String("addr", cfg.Addr),
		zap.String("sms_provider", cfg.SMSProvider),
		zap.Bool("location", cfg.HasLocation))

	srv := server.New(cfg, server.NewSender(cfg, log), log)
	return srv.Run(ctx)
}
