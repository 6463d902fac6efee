package angelone

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := New("test-key", "test-jwt", 2*time.Second)
	c.SetBaseURL(srv.URL)
	return c
}

func TestFetchQuotes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, quotePath, r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-PrivateKey"))
		assert.Equal(t, "Bearer test-jwt", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body struct {
			Mode           string              `json:"mode"`
			ExchangeTokens map[string][]string `json:"exchangeTokens"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "LTP", body.Mode)
		assert.Equal(t, []string{"RELIANCE", "TCS"}, body.ExchangeTokens["NSE"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": true,
			"data": [
				{"symbol": "RELIANCE", "ltp": 2945.3},
				{"tradingSymbol": "tcs", "last_price": 4100.05}
			]
		}`))
	})

	quotes, err := c.FetchQuotes(context.Background(), []string{"RELIANCE", "TCS"})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"RELIANCE": 2945.3, "TCS": 4100.05}, quotes)
}

func TestFetchQuotesDropsMalformedEntries(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{"symbol": "RELIANCE", "ltp": 2945.3},
				{"ltp": 10.5},
				{"symbol": "TCS"},
				{"symbol": "INFY", "ltp": "oops"}
			]
		}`))
	})

	quotes, err := c.FetchQuotes(context.Background(), []string{"RELIANCE", "TCS", "INFY"})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"RELIANCE": 2945.3}, quotes)
}

func TestFetchQuotesUpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.FetchQuotes(context.Background(), []string{"RELIANCE"})
	assert.Error(t, err)
}
