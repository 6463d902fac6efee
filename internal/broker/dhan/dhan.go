package dhan

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

const defaultBaseURL = "https://api.dhan.co"

// Client fetches last traded prices from the Dhan market-live quotes
// endpoint.
type Client struct {
	api     *api.Client
	token   string
	baseURL string
}

var _ interfaces.QuoteSource = (*Client)(nil)

func New(accessToken string, timeout time.Duration) *Client {
	return &Client{
		api:     api.NewClient(api.WithTimeout(timeout), api.WithHeader("Accept", "application/json")),
		token:   accessToken,
		baseURL: defaultBaseURL,
	}
}

// SetBaseURL points the client at an alternative API root.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}

func (c *Client) Broker() types.Broker {
	return types.BrokerDhan
}

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

// FetchQuotes POSTs the raw symbol batch with the access-token header.
// Entries whose symbol or price cannot be recovered are dropped.
func (c *Client) FetchQuotes(ctx context.Context, symbols []string) (map[string]float64, error) {
	body := map[string][]string{"symbols": symbols}

	resp, err := c.api.POST(ctx, c.baseURL+"/marketlive/quotes", body, map[string]string{
		"access-token": c.token,
	})
	if err != nil {
		return nil, fmt.Errorf("dhan quotes: %w", err)
	}

	var envelope struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := resp.ParseJSON(&envelope); err != nil {
		return nil, fmt.Errorf("dhan quotes: %w", err)
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
		return nil, errors.New("dhan quotes: no usable quotes")
	}
	return out, nil
}
