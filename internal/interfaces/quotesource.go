package interfaces

import (
	"context"

	"india-quote-stream/internal/types"
)

// QuoteSource fetches last traded prices for canonical uppercase symbols.
//
// FetchQuotes returns a non-empty symbol->price mapping on success. Every
// failure mode of an upstream (transport error, non-2xx status, unparsable
// body, zero usable prices) is reported as an error so the polling loop can
// treat all sources identically and fall back to synthetic prices for the
// tick. Implementations do not retry and do not cache.
type QuoteSource interface {
	Broker() types.Broker
	FetchQuotes(ctx context.Context, symbols []string) (map[string]float64, error)
}
