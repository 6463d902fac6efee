package stream

import (
	"context"
	"time"

	"india-quote-stream/internal/interfaces"
	"india-quote-stream/internal/logger"
	"india-quote-stream/internal/synth"
	"india-quote-stream/internal/trace"
	"india-quote-stream/internal/types"
)

// Emitter delivers stream events to one connected client. A write error
// from any method is treated as a disconnect and ends the stream.
type Emitter interface {
	Info(broker types.Broker) error
	Quote(q types.Quote) error
	Warn(code string) error
}

// Driver runs the poll/emit loop for a single stream connection. It owns
// the connection's synthetic state and its resolved broker identity; the
// identity never changes for the lifetime of the stream. One Driver serves
// one client, so no tick ever runs concurrently with another tick of the
// same stream.
type Driver struct {
	broker   types.Broker
	source   interfaces.QuoteSource // nil when broker is mock
	symbols  []string
	interval time.Duration
	walk     *synth.Walk
	emitter  Emitter
}

func NewDriver(broker types.Broker, source interfaces.QuoteSource, symbols []string, interval time.Duration, walk *synth.Walk, em Emitter) *Driver {
	return &Driver{
		broker:   broker,
		source:   source,
		symbols:  symbols,
		interval: interval,
		walk:     walk,
		emitter:  em,
	}
}

// Run announces the resolved broker once, then ticks on the fixed cadence
// until ctx is cancelled or the client goes away. The next tick is scheduled
// only after the current one finishes, so a slow upstream delays rather than
// overlaps polling.
func (d *Driver) Run(ctx context.Context) {
	ctx, span := trace.StartSpan(ctx, "stream.Run")
	defer span.End()

	if err := d.emitter.Info(d.broker); err != nil {
		return
	}
	logger.Info(ctx, "Stream started", "broker", d.broker, "symbols", len(d.symbols))

	for {
		if !d.tick(ctx) {
			logger.Info(context.Background(), "Stream stopped", "broker", d.broker)
			return
		}

		timer := time.NewTimer(d.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			logger.Info(context.Background(), "Stream stopped", "broker", d.broker)
			return
		case <-timer.C:
		}
	}
}

// tick performs one poll-and-emit cycle. It reports false when the stream
// must stop (cancellation or a failed write).
func (d *Driver) tick(ctx context.Context) bool {
	var live map[string]float64

	if d.source != nil {
		quotes, err := d.source.FetchQuotes(ctx, d.symbols)
		if err != nil {
			if ctx.Err() != nil {
				return false
			}
			logger.Warn(ctx, "Poll failed, serving synthetic prices", "broker", d.broker, "error", err)
			if err := d.emitter.Warn("poll_failed"); err != nil {
				return false
			}
		} else {
			live = quotes
		}
	}

	// Nothing is emitted after cancellation, even for a completed poll.
	if ctx.Err() != nil {
		return false
	}

	now := time.Now().UnixMilli()
	for _, sym := range d.symbols {
		price, ok := live[sym]
		if !ok {
			price = d.walk.Next(sym)
		}
		q := types.Quote{Symbol: sym, LTP: price, Ts: now, Broker: d.broker}
		if err := d.emitter.Quote(q); err != nil {
			return false
		}
	}
	return true
}
