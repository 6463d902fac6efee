package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBroker(t *testing.T) {
	for _, b := range AllBrokers {
		got, ok := ParseBroker(string(b))
		assert.True(t, ok)
		assert.Equal(t, b, got)
	}

	// mock is a sentinel, never a requestable broker
	for _, bad := range []string{"", "mock", "zerodha", "BrokerX"} {
		_, ok := ParseBroker(bad)
		assert.False(t, ok, "value %q", bad)
	}
}

func TestQuoteJSON(t *testing.T) {
	q := Quote{Symbol: "RELIANCE", LTP: 2945.3, Ts: 1724900000000, Broker: BrokerZerodha}

	b, err := json.Marshal(q)
	require.NoError(t, err)
	assert.JSONEq(t, `{"symbol":"RELIANCE","ltp":2945.3,"ts":1724900000000,"broker":"Zerodha"}`, string(b))
}
