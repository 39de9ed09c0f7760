// Package server implements the line-oriented TCP dispatcher that sits in
// front of internal/engine, plus an optional HTTP/WebSocket admin feed.
package server

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/lobengine/lobengine/internal/engine"
)

// Hooks lets the caller observe side effects of a dispatched command
// without Dispatch itself taking on logging/broadcast concerns. Either
// field may be nil.
type Hooks struct {
	OnTrade func(engine.Trade)
	OnAdmit func(report engine.Report)
}

// Dispatch parses one protocol line and invokes eng, returning the response
// text (always terminated with a trailing newline) and whether the caller
// should close the connection after writing it.
func Dispatch(eng *engine.MatchingEngine, line string, hooks Hooks) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return errorLine("Unknown command", "Available commands: ADD_ORDER, SHOW_ORDERS, DISCONNECT"), false
	}

	switch fields[0] {
	case "ADD_ORDER":
		return dispatchAddOrder(eng, fields[1:], hooks), false
	case "SHOW_ORDERS":
		return dispatchShowOrders(eng, fields[1:]), false
	case "DISCONNECT":
		return "OK: Goodbye!\n", true
	default:
		return errorLine("Unknown command", "Available commands: ADD_ORDER, SHOW_ORDERS, DISCONNECT"), false
	}
}

func dispatchAddOrder(eng *engine.MatchingEngine, args []string, hooks Hooks) string {
	if len(args) != 4 {
		return errorLine("Invalid command format", "Usage: ADD_ORDER <BUY|SELL> <SYMBOL> <PRICE> <QUANTITY>")
	}

	sideStr, symbol, priceStr, qtyStr := args[0], args[1], args[2], args[3]

	var side engine.Side
	switch sideStr {
	case "BUY":
		side = engine.Buy
	case "SELL":
		side = engine.Sell
	default:
		return errorLine("Invalid side. Use BUY or SELL", "")
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return errorLine("Invalid command format", "Usage: ADD_ORDER <BUY|SELL> <SYMBOL> <PRICE> <QUANTITY>")
	}

	quantity, err := strconv.ParseInt(qtyStr, 10, 64)
	if err != nil {
		return errorLine("Invalid command format", "Usage: ADD_ORDER <BUY|SELL> <SYMBOL> <PRICE> <QUANTITY>")
	}

	if price.Sign() <= 0 || quantity <= 0 {
		return errorLine("Price and quantity must be positive", "")
	}

	report, err := eng.Submit(symbol, side, price, quantity)
	if err != nil {
		return errorLine("Price and quantity must be positive", "")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Order added: %s %d %s @ $%s (Order ID: %d)\n",
		report.Order.Side, report.Order.Quantity, report.Order.Symbol,
		report.Order.Price.StringFixed(2), report.Order.ID)

	for _, trade := range report.Trades {
		fmt.Fprintf(&b, "TRADE EXECUTED: %d %s @ $%s\n", trade.Quantity, trade.Symbol, trade.Price.StringFixed(2))
		if hooks.OnTrade != nil {
			hooks.OnTrade(trade)
		}
	}

	if hooks.OnAdmit != nil {
		hooks.OnAdmit(report)
	}

	return b.String()
}

func dispatchShowOrders(eng *engine.MatchingEngine, args []string) string {
	if len(args) != 1 {
		return errorLine("Invalid command format", "Usage: SHOW_ORDERS <SYMBOL>")
	}
	symbol := args[0]

	snap, ok := eng.Snapshot(symbol)
	if !ok {
		return fmt.Sprintf("No orders found for symbol: %s\n", symbol)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "=== %s Order Book ===\n", symbol)
	b.WriteString("BUY ORDERS:\n")
	if len(snap.Bids) == 0 {
		b.WriteString("  No buy orders\n")
	} else {
		for _, lvl := range snap.Bids {
			fmt.Fprintf(&b, "  Order #%d: %d @ $%s\n", lvl.ID, lvl.Quantity, lvl.Price.StringFixed(2))
		}
	}
	b.WriteString("SELL ORDERS:\n")
	if len(snap.Asks) == 0 {
		b.WriteString("  No sell orders\n")
	} else {
		for _, lvl := range snap.Asks {
			fmt.Fprintf(&b, "  Order #%d: %d @ $%s\n", lvl.ID, lvl.Quantity, lvl.Price.StringFixed(2))
		}
	}

	return b.String()
}

func errorLine(message, usage string) string {
	if usage == "" {
		return fmt.Sprintf("ERROR: %s\n", message)
	}
	return fmt.Sprintf("ERROR: %s\n%s\n", message, usage)
}
