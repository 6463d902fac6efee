package main

import (
	"context"
	"fmt"
	"os"

	"india-quote-stream/internal/broker"
	"india-quote-stream/internal/logger"
	"india-quote-stream/internal/server"
	"india-quote-stream/internal/store"
	"india-quote-stream/internal/trace"
)

// initializeSystem initializes the logger and tracer
func initializeSystem() error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	return nil
}

// buildApp snapshots broker credentials once and wires the HTTP app.
func buildApp(ctx context.Context, cfg *store.Config) *server.App {
	creds := broker.CredentialsFromEnv()

	avail := creds.Available()
	if len(avail) == 0 {
		logger.Warn(ctx, "No broker credentials configured - streams will serve synthetic quotes")
	} else {
		names := make([]string, 0, len(avail))
		for _, b := range avail {
			names = append(names, string(b))
		}
		logger.Info(ctx, "Broker credentials found", "brokers", names)
	}

	return server.New(cfg, creds)
}
