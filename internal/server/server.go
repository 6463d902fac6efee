package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"india-quote-stream/internal/broker"
	"india-quote-stream/internal/logger"
	"india-quote-stream/internal/store"
)

// App wires config, the process-wide credential snapshot, and the HTTP
// routes together.
type App struct {
	cfg   *store.Config
	creds broker.Credentials
	mux   *http.ServeMux
}

func New(cfg *store.Config, creds broker.Credentials) *App {
	app := &App{
		cfg:   cfg,
		creds: creds,
		mux:   http.NewServeMux(),
	}

	app.mux.HandleFunc("GET /api/india/stream", app.handleStream)
	app.mux.HandleFunc("POST /api/broker/order", app.handleOrder)
	app.mux.HandleFunc("GET /healthz", app.handleHealth)

	return app
}

// Handler exposes the route table; tests drive it directly.
func (a *App) Handler() http.Handler {
	return a.mux
}

func (a *App) pollInterval() time.Duration {
	return time.Duration(a.cfg.Stream.PollMillis) * time.Millisecond
}

func (a *App) brokerTimeout() time.Duration {
	return time.Duration(a.cfg.Broker.TimeoutSeconds) * time.Second
}

// Run serves until ctx is cancelled, then shuts down gracefully. Open
// streams observe the shutdown through their request contexts.
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    a.cfg.Server.Addr,
		Handler: a.mux,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			// Long-lived streams may outlast the grace period; close them.
			logger.Warn(context.Background(), "Graceful shutdown timed out, closing connections", "error", err)
			return srv.Close()
		}
		return nil
	}
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
