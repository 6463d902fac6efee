package broker

import (
	"time"

	"india-quote-stream/internal/broker/angelone"
	"india-quote-stream/internal/broker/dhan"
	"india-quote-stream/internal/broker/upstox"
	"india-quote-stream/internal/broker/zerodha"
	"india-quote-stream/internal/interfaces"
	"india-quote-stream/internal/types"
)

// NewSource builds the quote source for a resolved broker identity. It
// returns nil for the mock identity; mock streams skip polling entirely and
// serve synthetic prices only.
func NewSource(b types.Broker, creds Credentials, timeout time.Duration) interfaces.QuoteSource {
	switch b {
	case types.BrokerZerodha:
		return zerodha.New(creds.ZerodhaAPIKey, creds.ZerodhaAccessToken, timeout)
	case types.BrokerUpstox:
		return upstox.New(creds.UpstoxAccessToken, timeout)
	case types.BrokerAngelOne:
		return angelone.New(creds.AngelAPIKey, creds.AngelJWTToken, timeout)
	case types.BrokerDhan:
		return dhan.New(creds.DhanAccessToken, timeout)
	default:
		return nil
	}
}
