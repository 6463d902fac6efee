package server

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"

	"india-quote-stream/internal/logger"
	"india-quote-stream/internal/types"
)

const maxOrderBody = 1 << 20

// handleOrder is the mock order proxy: it accepts any JSON order payload,
// fabricates an order id, and echoes the request back. No broker is called
// and nothing is persisted.
func (a *App) handleOrder(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxOrderBody))
	if err != nil || !json.Valid(body) {
		body = []byte("{}")
	}

	resp := types.OrderResp{
		OK:      true,
		OrderID: fmt.Sprintf("MOCK-%d", rand.Intn(1_000_000)),
		Echo:    json.RawMessage(body),
	}

	logger.Info(r.Context(), "Mock order accepted", "order_id", resp.OrderID, "bytes", len(body))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Warn(r.Context(), "Failed to write order response", "error", err)
	}
}
