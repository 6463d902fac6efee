package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"india-quote-stream/internal/stream"
	"india-quote-stream/internal/types"
)

// sseEmitter writes events in text/event-stream framing, flushing after
// every event so intermediaries cannot batch them.
type sseEmitter struct {
	w       io.Writer
	flusher http.Flusher
}

var _ stream.Emitter = (*sseEmitter)(nil)

func newSSEEmitter(w io.Writer, flusher http.Flusher) *sseEmitter {
	return &sseEmitter{w: w, flusher: flusher}
}

// event writes one SSE frame. An empty name produces a default "message"
// event, which is how per-symbol quotes are delivered.
func (e *sseEmitter) event(name string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if name != "" {
		if _, err := fmt.Fprintf(e.w, "event: %s\n", name); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(e.w, "data: %s\n\n", data); err != nil {
		return err
	}
	e.flusher.Flush()
	return nil
}

func (e *sseEmitter) Info(b types.Broker) error {
	return e.event("info", map[string]types.Broker{"broker": b})
}

func (e *sseEmitter) Quote(q types.Quote) error {
	return e.event("", q)
}

func (e *sseEmitter) Warn(code string) error {
	return e.event("warn", map[string]string{"error": code})
}
