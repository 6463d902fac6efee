package angelone

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"india-quote-stream/internal/api"
	"india-quote-stream/internal/interfaces"
	"india-quote-stream/internal/types"
)

const defaultBaseURL = "https://apiconnect.angelbroking.com"

const quotePath = "/rest/secure/angelbroking/market/v1/quote"

// Client fetches last traded prices from the Angel One SmartAPI market
// quote endpoint.
type Client struct {
	api     *api.Client
	apiKey  string
	jwt     string
	baseURL string
}

var _ interfaces.QuoteSource = (*Client)(nil)

func New(apiKey, jwtToken string, timeout time.Duration) *Client {
	return &Client{
		api:     api.NewClient(api.WithTimeout(timeout), api.WithHeader("Accept", "application/json")),
		apiKey:  apiKey,
		jwt:     jwtToken,
		baseURL: defaultBaseURL,
	}
}

// SetBaseURL points the client at an alternative API root.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}

func (c *Client) Broker() types.Broker {
	return types.BrokerAngelOne
}

// listEntry covers the symbol and price field names SmartAPI responses use.
type listEntry struct {
	Symbol        string   `json:"symbol"`
	TradingSymbol string   `json:"tradingSymbol"`
	LTP           *float64 `json:"ltp"`
	LastPrice     *float64 `json:"last_price"`
}

func (e listEntry) symbol() string {
	if e.Symbol != "" {
		return strings.ToUpper(e.Symbol)
	}
	return strings.ToUpper(e.TradingSymbol)
}

func (e listEntry) price() (float64, bool) {
	for _, p := range []*float64{e.LTP, e.LastPrice} {
		if p != nil && !math.IsNaN(*p) && !math.IsInf(*p, 0) {
			return *p, true
		}
	}
	return 0, false
}

// FetchQuotes POSTs an LTP-mode quote request for the NSE symbols. Entries
// whose symbol or price cannot be recovered are dropped, not defaulted.
func (c *Client) FetchQuotes(ctx context.Context, symbols []string) (map[string]float64, error) {
	body := map[string]any{
		"mode": "LTP",
		"exchangeTokens": map[string][]string{
			"NSE": symbols,
		},
	}

	resp, err := c.api.POST(ctx, c.baseURL+quotePath, body, map[string]string{
		"X-PrivateKey":  c.apiKey,
		"Authorization": "Bearer " + c.jwt,
	})
	if err != nil {
		return nil, fmt.Errorf("angelone quotes: %w", err)
	}

	var envelope struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := resp.ParseJSON(&envelope); err != nil {
		return nil, fmt.Errorf("angelone quotes: %w", err)
	}

	out := make(map[string]float64, len(envelope.Data))
	for _, raw := range envelope.Data {
		var entry listEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			continue
		}
		sym := entry.symbol()
		price, ok := entry.price()
		if sym == "" || !ok {
			continue
		}
		out[sym] = price
	}
	if len(out) == 0 {
		return nil, errors.New("angelone quotes: no usable quotes")
	}
	return out, nil
}
