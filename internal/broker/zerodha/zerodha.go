package zerodha

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	kiteconnect "github.com/zerodha/gokiteconnect/v4"

	"india-quote-stream/internal/interfaces"
	"india-quote-stream/internal/types"
)

// Client fetches last traded prices from the Kite Connect quote API.
type Client struct {
	kc *kiteconnect.Client
}

var _ interfaces.QuoteSource = (*Client)(nil)

func New(apiKey, accessToken string, timeout time.Duration) *Client {
	kc := kiteconnect.New(apiKey)
	kc.SetAccessToken(accessToken)
	kc.SetTimeout(timeout)
	return &Client{kc: kc}
}

// SetBaseURI points the client at an alternative Kite API root.
func (c *Client) SetBaseURI(uri string) {
	c.kc.SetBaseURI(uri)
}

func (c *Client) Broker() types.Broker {
	return types.BrokerZerodha
}

// FetchQuotes maps each symbol to its NSE instrument (NSE:SYMBOL), asks the
// LTP endpoint for the batch, and folds the keyed response back onto the
// app-level symbols. Entries without a usable price are dropped.
func (c *Client) FetchQuotes(ctx context.Context, symbols []string) (map[string]float64, error) {
	instruments := make([]string, 0, len(symbols))
	for _, s := range symbols {
		instruments = append(instruments, "NSE:"+s)
	}

	ltp, err := c.kc.GetLTP(instruments...)
	if err != nil {
		return nil, fmt.Errorf("kite ltp: %w", err)
	}

	out := make(map[string]float64, len(ltp))
	for key, q := range ltp {
		sym := key
		if i := strings.IndexByte(key, ':'); i >= 0 {
			sym = key[i+1:]
		}
		if q.LastPrice <= 0 || math.IsNaN(q.LastPrice) || math.IsInf(q.LastPrice, 0) {
			continue
		}
		out[strings.ToUpper(sym)] = q.LastPrice
	}
	if len(out) == 0 {
		return nil, errors.New("kite ltp: no usable quotes")
	}
	return out, nil
}
