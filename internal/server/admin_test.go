package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lobengine/lobengine/internal/engine"
)

func TestAdminHealthz(t *testing.T) {
	eng := engine.NewMatchingEngine()
	srv := New(eng, zap.NewNop())
	admin := NewAdminServer(srv, zap.NewNop())

	ts := httptest.NewServer(admin.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminRelayForwardsTrades(t *testing.T) {
	eng := engine.NewMatchingEngine()
	srv := New(eng, zap.NewNop())
	admin := NewAdminServer(srv, zap.NewNop())

	sub := admin.hub.Subscribe(4)
	defer admin.hub.Unsubscribe(sub)

	_, _ = Dispatch(eng, "ADD_ORDER BUY AAPL 150.00 100", Hooks{OnTrade: srv.TradeHub().Broadcast})
	_, _ = Dispatch(eng, "ADD_ORDER SELL AAPL 149.00 100", Hooks{OnTrade: srv.TradeHub().Broadcast})

	trade := <-sub.ch
	assert.Equal(t, "AAPL", trade.Symbol)
	assert.Equal(t, int64(100), trade.Quantity)
	assert.Equal(t, "150.00", trade.Price)
}
