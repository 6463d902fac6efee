package zerodha

import (
	"context"
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

	c := New("test-key", "test-token", 2*time.Second)
	c.SetBaseURI(srv.URL)
	return c
}

func TestFetchQuotes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.ElementsMatch(t, []string{"NSE:RELIANCE", "NSE:TCS"}, r.URL.Query()["i"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "success",
			"data": {
				"NSE:RELIANCE": {"instrument_token": 738561, "last_price": 2945.3},
				"NSE:TCS": {"instrument_token": 2953217, "last_price": 4100.05}
			}
		}`))
	})

	quotes, err := c.FetchQuotes(context.Background(), []string{"RELIANCE", "TCS"})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"RELIANCE": 2945.3, "TCS": 4100.05}, quotes)
}

func TestFetchQuotesDropsZeroPrices(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "success",
			"data": {
				"NSE:RELIANCE": {"instrument_token": 738561, "last_price": 2945.3},
				"NSE:TCS": {"instrument_token": 2953217, "last_price": 0}
			}
		}`))
	})

	quotes, err := c.FetchQuotes(context.Background(), []string{"RELIANCE", "TCS"})
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"RELIANCE": 2945.3}, quotes)
}

func TestFetchQuotesUpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"status":"error","message":"Invalid token","error_type":"TokenException"}`))
	})

	_, err := c.FetchQuotes(context.Background(), []string{"RELIANCE"})
	assert.Error(t, err)
}

func TestFetchQuotesEmptyData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"success","data":{}}`))
	})

	_, err := c.FetchQuotes(context.Background(), []string{"RELIANCE"})
	assert.Error(t, err)
}
