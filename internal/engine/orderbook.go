package engine

import "sync"

// OrderBook maintains price-time priority for a single symbol and performs
// continuous matching on every admission. All mutation happens under mu; an
// admission may observe a transiently crossed book (I2) only while mu is
// held inside Admit.
type OrderBook struct {
	symbol string

	mu   sync.Mutex
	bids *priceTimeQueue
	asks *priceTimeQueue
}

func newOrderBook(symbol string) *OrderBook {
	return &OrderBook{
		symbol: symbol,
		bids:   newBidQueue(),
		asks:   newAskQueue(),
	}
}

// Admit appends order to its side and runs the matching loop, returning the
// admission report. order.Sequence and order.ID must already be assigned by
// the caller (the registry), under the registry's own mutex.
func (b *OrderBook) Admit(order Order) (Report, error) {
	if order.Symbol != b.symbol {
		return Report{}, ErrInvalidSymbol
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if order.Side == Buy {
		b.bids.push(order)
	} else {
		b.asks.push(order)
	}

	report := Report{Order: order}
	report.Trades = b.match()
	return report, nil
}

// match resolves the cross, if any, emitting trades until one side is
// exhausted or the book is no longer crossed (I2). The resting order (the
// one with the lower Sequence) always sets the execution price.
func (b *OrderBook) match() []Trade {
	var trades []Trade

	for {
		bidTop := b.bids.peek()
		askTop := b.asks.peek()
		if bidTop == nil || askTop == nil {
			break
		}
		if bidTop.order.Price.LessThan(askTop.order.Price) {
			break
		}

		bidOrder := &bidTop.order
		askOrder := &askTop.order

		var execPrice = bidOrder.Price
		if !(bidOrder.Sequence < askOrder.Sequence) {
			execPrice = askOrder.Price
		}

		tradeQty := bidOrder.Quantity
		if askOrder.Quantity < tradeQty {
			tradeQty = askOrder.Quantity
		}

		trades = append(trades, Trade{Symbol: b.symbol, Price: execPrice, Quantity: tradeQty})

		bidOrder.Quantity -= tradeQty
		askOrder.Quantity -= tradeQty

		if bidOrder.Quantity == 0 {
			b.bids.popTop()
		} else {
			b.bids.fixTop()
		}
		if askOrder.Quantity == 0 {
			b.asks.popTop()
		} else {
			b.asks.fixTop()
		}
	}

	return trades
}

// Snapshot renders both sides in priority order without mutating the book.
func (b *OrderBook) Snapshot() SnapshotView {
	b.mu.Lock()
	defer b.mu.Unlock()

	return SnapshotView{
		Symbol: b.symbol,
		Bids:   b.bids.levels(),
		Asks:   b.asks.levels(),
	}
}
