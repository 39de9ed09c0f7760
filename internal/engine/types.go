// Package engine implements the multi-symbol limit order book matching core:
// order admission, price-time priority, and continuous matching.
package engine

import "github.com/shopspring/decimal"

// Side is the direction of an order.
type Side int

const (
	// Buy indicates a bid order.
	Buy Side = iota
	// Sell indicates an ask order.
	Sell
)

// String renders the side the way the wire protocol expects it.
func (s Side) String() string {
	if s == Buy {
		return "BUY"
	}
	return "SELL"
}

// Order is a resting or incoming limit order. Price and Symbol are fixed at
// construction; Quantity is the residual amount still eligible to match and
// is the only field mutated after admission.
type Order struct {
	ID       int64
	Symbol   string
	Side     Side
	Price    decimal.Decimal
	Quantity int64
	Sequence int64
}

// Trade describes one execution produced by the matching loop.
type Trade struct {
	Symbol   string
	Price    decimal.Decimal
	Quantity int64
}

// Report is everything a single Admit call produces: the admission line and
// the trades it triggered, in the order they occurred.
type Report struct {
	Order  Order
	Trades []Trade
}

// BookLevel is one resting order as rendered by a snapshot.
type BookLevel struct {
	ID       int64
	Quantity int64
	Price    decimal.Decimal
}

// SnapshotView is a read-only rendering of both sides of a book, in
// priority order.
type SnapshotView struct {
	Symbol string
	Bids   []BookLevel
	Asks   []BookLevel
}
