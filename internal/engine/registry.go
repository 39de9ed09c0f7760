package engine

import (
	"sync"

	"github.com/shopspring/decimal"
)

// MatchingEngine is the process-wide symbol registry and ID allocator atop
// the per-symbol OrderBooks. It is safe for concurrent use.
type MatchingEngine struct {
	mu     sync.Mutex
	books  map[string]*OrderBook
	nextID int64
	seqs   map[string]int64
}

// NewMatchingEngine builds an empty registry.
func NewMatchingEngine() *MatchingEngine {
	return &MatchingEngine{
		books: make(map[string]*OrderBook),
		seqs:  make(map[string]int64),
	}
}

// Submit validates price/quantity, allocates an ID and a per-book sequence
// number under the registry mutex, obtains (lazily creating) the target
// book, releases the registry mutex, and then hands the order to the book's
// Admit. The registry mutex is never held while the book matches.
func (e *MatchingEngine) Submit(symbol string, side Side, price decimal.Decimal, quantity int64) (Report, error) {
	if price.Sign() <= 0 || quantity <= 0 {
		return Report{}, ErrInvalidArguments
	}

	e.mu.Lock()
	e.nextID++
	id := e.nextID
	e.seqs[symbol]++
	seq := e.seqs[symbol]
	book, ok := e.books[symbol]
	if !ok {
		book = newOrderBook(symbol)
		e.books[symbol] = book
	}
	e.mu.Unlock()

	order := Order{
		ID:       id,
		Symbol:   symbol,
		Side:     side,
		Price:    price,
		Quantity: quantity,
		Sequence: seq,
	}

	return book.Admit(order)
}

// Snapshot returns the named book's current state. The bool result is false
// if the symbol has never been submitted to.
func (e *MatchingEngine) Snapshot(symbol string) (SnapshotView, bool) {
	e.mu.Lock()
	book, ok := e.books[symbol]
	e.mu.Unlock()

	if !ok {
		return SnapshotView{}, false
	}
	return book.Snapshot(), true
}
