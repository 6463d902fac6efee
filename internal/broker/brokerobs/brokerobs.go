package brokerobs

import (
	"context"

	"india-quote-stream/internal/interfaces"
	"india-quote-stream/internal/logger"
	"india-quote-stream/internal/trace"
	"india-quote-stream/internal/types"
)

// observableSource wraps a QuoteSource with observability (logging & tracing)
type observableSource struct {
	src interfaces.QuoteSource
}

// Compile-time interface check
var _ interfaces.QuoteSource = (*observableSource)(nil)

// Wrap wraps a quote source with observability middleware
func Wrap(src interfaces.QuoteSource) interfaces.QuoteSource {
	return &observableSource{src: src}
}

func (o *observableSource) Broker() types.Broker {
	return o.src.Broker()
}

// FetchQuotes fetches quotes with observability
func (o *observableSource) FetchQuotes(ctx context.Context, symbols []string) (map[string]float64, error) {
	ctx, span := trace.StartSpan(ctx, "broker.FetchQuotes")
	defer span.End()

	logger.Debug(ctx, "Fetching quotes", "broker", o.src.Broker(), "symbols", len(symbols))

	quotes, err := o.src.FetchQuotes(ctx, symbols)
	if err != nil {
		logger.ErrorWithErr(ctx, "Quote fetch failed", err, "broker", o.src.Broker())
		return nil, err
	}

	logger.Debug(ctx, "Quotes fetched", "broker", o.src.Broker(), "count", len(quotes))
	return quotes, nil
}
