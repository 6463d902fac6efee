package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"india-quote-stream/internal/logger"
	"india-quote-stream/internal/store"
	"india-quote-stream/internal/trace"

	"github.com/joho/godotenv"
)

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	_ = godotenv.Load()

	must(initializeSystem())

	cfg, err := store.LoadConfig("config.yaml")
	must(err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigc
		logger.Info(ctx, "Shutting down...")
		cancel()
	}()

	app := buildApp(ctx, cfg)

	logger.Info(ctx, "Server started", "addr", cfg.Server.Addr, "poll_ms", cfg.Stream.PollMillis)
	if err := app.Run(ctx); err != nil {
		logger.ErrorWithErr(ctx, "Server exited with error", err)
	}

	_ = trace.Shutdown(context.Background())
}
