package broker

import (
	"os"

	"india-quote-stream/internal/types"
)

// Credentials is the process-wide snapshot of broker secrets, taken once at
// startup and passed down read-only. A broker whose required values are
// missing is simply unavailable; that is a normal condition, not an error.
type Credentials struct {
	ZerodhaAPIKey      string
	ZerodhaAccessToken string
	UpstoxAccessToken  string
	AngelAPIKey        string
	AngelJWTToken      string
	DhanAccessToken    string
}

// CredentialsFromEnv reads the broker secrets from the environment.
func CredentialsFromEnv() Credentials {
	return Credentials{
		ZerodhaAPIKey:      os.Getenv("ZERODHA_API_KEY"),
		ZerodhaAccessToken: os.Getenv("ZERODHA_ACCESS_TOKEN"),
		UpstoxAccessToken:  os.Getenv("UPSTOX_ACCESS_TOKEN"),
		AngelAPIKey:        os.Getenv("ANGEL_API_KEY"),
		AngelJWTToken:      os.Getenv("ANGEL_JWT_TOKEN"),
		DhanAccessToken:    os.Getenv("DHAN_ACCESS_TOKEN"),
	}
}

// Has reports whether the full credential set for a broker is present.
func (c Credentials) Has(b types.Broker) bool {
	switch b {
	case types.BrokerZerodha:
		return c.ZerodhaAPIKey != "" && c.ZerodhaAccessToken != ""
	case types.BrokerUpstox:
		return c.UpstoxAccessToken != ""
	case types.BrokerAngelOne:
		return c.AngelAPIKey != "" && c.AngelJWTToken != ""
	case types.BrokerDhan:
		return c.DhanAccessToken != ""
	default:
		return false
	}
}

// Available returns the brokers with complete credentials, in selection order.
func (c Credentials) Available() []types.Broker {
	out := make([]types.Broker, 0, len(types.AllBrokers))
	for _, b := range types.AllBrokers {
		if c.Has(b) {
			out = append(out, b)
		}
	}
	return out
}
