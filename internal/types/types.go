package types

import "encoding/json"

// Broker identifies one of the supported quote integrations.
type Broker string

const (
	BrokerZerodha  Broker = "Zerodha"
	BrokerUpstox   Broker = "Upstox"
	BrokerAngelOne Broker = "AngelOne"
	BrokerDhan     Broker = "Dhan"

	// BrokerMock is the synthetic fallback source used when no broker
	// credentials are configured.
	BrokerMock Broker = "mock"
)

// AllBrokers lists the real integrations in selection order.
var AllBrokers = []Broker{BrokerZerodha, BrokerUpstox, BrokerAngelOne, BrokerDhan}

// ParseBroker maps a request value onto a known broker. Unknown or empty
// values report ok=false and are treated as if no broker was requested.
func ParseBroker(s string) (Broker, bool) {
	for _, b := range AllBrokers {
		if s == string(b) {
			return b, true
		}
	}
	return "", false
}

// Quote is one last-traded-price observation for a symbol. The Broker tag
// reflects the source that was attempted for the tick, even when the price
// itself came from the synthetic fallback.
type Quote struct {
	Symbol string  `json:"symbol"`
	LTP    float64 `json:"ltp"`
	Ts     int64   `json:"ts"`
	Broker Broker  `json:"broker"`
}

// OrderResp is the normalized answer of the mock order proxy. The original
// request body is echoed back untouched.
type OrderResp struct {
	OK      bool            `json:"ok"`
	OrderID string          `json:"order_id"`
	Echo    json.RawMessage `json:"echo"`
}
