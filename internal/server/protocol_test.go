package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lobengine/lobengine/internal/engine"
)

func TestDispatchAddOrderRest(t *testing.T) {
	eng := engine.NewMatchingEngine()
	resp, closeConn := Dispatch(eng, "ADD_ORDER BUY AAPL 150.00 100", Hooks{})
	assert.False(t, closeConn)
	assert.Equal(t, "Order added: BUY 100 AAPL @ $150.00 (Order ID: 1)\n", resp)
}

func TestDispatchAddOrderWithTrade(t *testing.T) {
	eng := engine.NewMatchingEngine()
	_, _ = Dispatch(eng, "ADD_ORDER BUY AAPL 150.00 100", Hooks{})

	resp, _ := Dispatch(eng, "ADD_ORDER SELL AAPL 149.00 100", Hooks{})
	assert.Equal(t, "Order added: SELL 100 AAPL @ $149.00 (Order ID: 2)\nTRADE EXECUTED: 100 AAPL @ $150.00\n", resp)
}

func TestDispatchShowOrdersEmptySellSide(t *testing.T) {
	eng := engine.NewMatchingEngine()
	_, _ = Dispatch(eng, "ADD_ORDER BUY AAPL 150.00 100", Hooks{})

	resp, _ := Dispatch(eng, "SHOW_ORDERS AAPL", Hooks{})
	assert.Equal(t, "=== AAPL Order Book ===\nBUY ORDERS:\n  Order #1: 100 @ $150.00\nSELL ORDERS:\n  No sell orders\n", resp)
}

func TestDispatchShowOrdersUnknownSymbol(t *testing.T) {
	eng := engine.NewMatchingEngine()
	resp, _ := Dispatch(eng, "SHOW_ORDERS GOOG", Hooks{})
	assert.Equal(t, "No orders found for symbol: GOOG\n", resp)
}

func TestDispatchDisconnect(t *testing.T) {
	eng := engine.NewMatchingEngine()
	resp, shouldClose := Dispatch(eng, "DISCONNECT", Hooks{})
	assert.True(t, shouldClose)
	assert.Equal(t, "OK: Goodbye!\n", resp)
}

func TestDispatchUnknownCommand(t *testing.T) {
	eng := engine.NewMatchingEngine()
	resp, closeConn := Dispatch(eng, "FOO BAR", Hooks{})
	assert.False(t, closeConn)
	assert.Equal(t, "ERROR: Unknown command\nAvailable commands: ADD_ORDER, SHOW_ORDERS, DISCONNECT\n", resp)
}

func TestDispatchAddOrderInvalidFormat(t *testing.T) {
	eng := engine.NewMatchingEngine()
	resp, _ := Dispatch(eng, "ADD_ORDER BUY AAPL 150.00", Hooks{})
	assert.Equal(t, "ERROR: Invalid command format\nUsage: ADD_ORDER <BUY|SELL> <SYMBOL> <PRICE> <QUANTITY>\n", resp)
}

func TestDispatchAddOrderInvalidSide(t *testing.T) {
	eng := engine.NewMatchingEngine()
	resp, _ := Dispatch(eng, "ADD_ORDER HOLD AAPL 150.00 10", Hooks{})
	assert.Equal(t, "ERROR: Invalid side. Use BUY or SELL\n", resp)
}

func TestDispatchAddOrderNonPositivePrice(t *testing.T) {
	eng := engine.NewMatchingEngine()
	resp, _ := Dispatch(eng, "ADD_ORDER BUY AAPL -1.00 10", Hooks{})
	assert.Equal(t, "ERROR: Price and quantity must be positive\n", resp)
}

func TestDispatchAddOrderNonPositiveQuantity(t *testing.T) {
	eng := engine.NewMatchingEngine()
	resp, _ := Dispatch(eng, "ADD_ORDER BUY AAPL 10.00 0", Hooks{})
	assert.Equal(t, "ERROR: Price and quantity must be positive\n", resp)
}

func TestDispatchShowOrdersInvalidFormat(t *testing.T) {
	eng := engine.NewMatchingEngine()
	resp, _ := Dispatch(eng, "SHOW_ORDERS", Hooks{})
	assert.Equal(t, "ERROR: Invalid command format\nUsage: SHOW_ORDERS <SYMBOL>\n", resp)
}

func TestDispatchEmptyLine(t *testing.T) {
	eng := engine.NewMatchingEngine()
	resp, closeConn := Dispatch(eng, "", Hooks{})
	assert.False(t, closeConn)
	assert.Equal(t, "ERROR: Unknown command\nAvailable commands: ADD_ORDER, SHOW_ORDERS, DISCONNECT\n", resp)
}

func TestDispatchOnAdmitHookFires(t *testing.T) {
	eng := engine.NewMatchingEngine()
	var captured *engine.Report
	hooks := Hooks{OnAdmit: func(report engine.Report) { captured = &report }}

	_, _ = Dispatch(eng, "ADD_ORDER BUY AAPL 150.00 100", hooks)

	require.NotNil(t, captured)
	assert.Equal(t, int64(1), captured.Order.ID)
}
