package upstox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strings"
	"time"

	"india-quote-stream/internal/api"
	"india-quote-stream/internal/interfaces"
	"india-quote-stream/internal/types"
)

const defaultBaseURL = "https://api-v2.upstox.com"

// Client fetches last traded prices from the Upstox full-quote API.
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
	return types.BrokerUpstox
}

// quoteEntry covers the field names Upstox has used for the last price.
type quoteEntry struct {
	LastPrice *float64 `json:"last_price"`
	LTP       *float64 `json:"ltp"`
	Close     *float64 `json:"close"`
}

func (q quoteEntry) price() (float64, bool) {
	for _, p := range []*float64{q.LastPrice, q.LTP, q.Close} {
		if p != nil && !math.IsNaN(*p) && !math.IsInf(*p, 0) {
			return *p, true
		}
	}
	return 0, false
}

// FetchQuotes requests quotes for NSE cash instruments (NSE_EQ|SYMBOL) and
// folds the keyed response back onto the app-level symbols. Entries whose
// price cannot be recovered are dropped, not defaulted.
func (c *Client) FetchQuotes(ctx context.Context, symbols []string) (map[string]float64, error) {
	params := url.Values{}
	for _, s := range symbols {
		params.Add("symbol", "NSE_EQ|"+s)
	}
	reqURL := c.baseURL + "/market-quote/quotes?" + params.Encode()

	resp, err := c.api.GET(ctx, reqURL, map[string]string{
		"Authorization": "Bearer " + c.token,
	})
	if err != nil {
		return nil, fmt.Errorf("upstox quotes: %w", err)
	}

	var envelope struct {
		Data map[string]json.RawMessage `json:"data"`
	}
	if err := resp.ParseJSON(&envelope); err != nil {
		return nil, fmt.Errorf("upstox quotes: %w", err)
	}

	out := make(map[string]float64, len(envelope.Data))
	for key, raw := range envelope.Data {
		var entry quoteEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			continue
		}
		price, ok := entry.price()
		if !ok {
			continue
		}
		sym := key
		if i := strings.IndexByte(key, '|'); i >= 0 {
			sym = key[i+1:]
		}
		out[strings.ToUpper(sym)] = price
	}
	if len(out) == 0 {
		return nil, errors.New("upstox quotes: no usable quotes")
	}
	return out, nil
}
