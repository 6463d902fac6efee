package server

import (
	"net/http"
	"strings"

	"india-quote-stream/internal/broker"
	"india-quote-stream/internal/broker/brokerobs"
	"india-quote-stream/internal/interfaces"
	"india-quote-stream/internal/logger"
	"india-quote-stream/internal/stream"
	"india-quote-stream/internal/synth"
	"india-quote-stream/internal/types"
)

// handleStream serves the SSE quote stream. The broker identity is resolved
// once, announced via an initial info event, then quotes are pushed every
// tick until the client disconnects.
func (a *App) handleStream(w http.ResponseWriter, r *http.Request) {
	symbols := parseSymbols(r.URL.Query().Get("symbols"))
	if len(symbols) == 0 {
		http.Error(w, "missing symbols", http.StatusBadRequest)
		return
	}

	// Unknown broker values are ignored as if the parameter was omitted.
	requested, _ := types.ParseBroker(r.URL.Query().Get("broker"))
	resolved := broker.Resolve(a.creds, requested)

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache, no-transform")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	var source interfaces.QuoteSource
	if resolved != types.BrokerMock {
		source = brokerobs.Wrap(broker.NewSource(resolved, a.creds, a.brokerTimeout()))
	}

	logger.Info(r.Context(), "Stream request",
		"symbols", symbols,
		"requested", string(requested),
		"resolved", resolved)

	walk := synth.NewWalk(symbols, nil)
	em := newSSEEmitter(w, flusher)
	drv := stream.NewDriver(resolved, source, symbols, a.pollInterval(), walk, em)
	drv.Run(r.Context())
}

// parseSymbols normalizes the comma-separated symbols parameter: trimmed,
// upper-cased, empties filtered, duplicates removed (first occurrence wins).
func parseSymbols(raw string) []string {
	parts := strings.Split(raw, ",")
	seen := make(map[string]struct{}, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		s := strings.ToUpper(strings.TrimSpace(p))
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
