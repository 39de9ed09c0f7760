package engine

import "container/heap"

// orderEntry wraps a resting order for heap bookkeeping.
type orderEntry struct {
	order Order
	index int
}

// priceTimeQueue is a price-time priority heap for one side of one book.
// Ordering is supplied by less, so the same type serves both bids (higher
// price first) and asks (lower price first).
type priceTimeQueue struct {
	entries []*orderEntry
	less    func(a, b Order) bool
}

func newBidQueue() *priceTimeQueue {
	return &priceTimeQueue{less: func(a, b Order) bool {
		if !a.Price.Equal(b.Price) {
			return a.Price.GreaterThan(b.Price)
		}
		return a.Sequence < b.Sequence
	}}
}

func newAskQueue() *priceTimeQueue {
	return &priceTimeQueue{less: func(a, b Order) bool {
		if !a.Price.Equal(b.Price) {
			return a.Price.LessThan(b.Price)
		}
		return a.Sequence < b.Sequence
	}}
}

func (q priceTimeQueue) Len() int { return len(q.entries) }

func (q priceTimeQueue) Less(i, j int) bool {
	return q.less(q.entries[i].order, q.entries[j].order)
}

func (q priceTimeQueue) Swap(i, j int) {
	q.entries[i], q.entries[j] = q.entries[j], q.entries[i]
	q.entries[i].index = i
	q.entries[j].index = j
}

func (q *priceTimeQueue) Push(x any) {
	entry := x.(*orderEntry)
	entry.index = len(q.entries)
	q.entries = append(q.entries, entry)
}

func (q *priceTimeQueue) Pop() any {
	old := q.entries
	n := len(old)
	entry := old[n-1]
	entry.index = -1
	q.entries = old[:n-1]
	return entry
}

func (q *priceTimeQueue) peek() *orderEntry {
	if len(q.entries) == 0 {
		return nil
	}
	return q.entries[0]
}

func (q *priceTimeQueue) push(o Order) {
	heap.Push(q, &orderEntry{order: o})
}

func (q *priceTimeQueue) popTop() {
	heap.Pop(q)
}

// fixTop re-establishes heap order after the top entry's quantity changed
// in place.
func (q *priceTimeQueue) fixTop() {
	heap.Fix(q, 0)
}

// levels renders the queue's entries in priority order without mutating it.
func (q *priceTimeQueue) levels() []BookLevel {
	ordered := make([]*orderEntry, len(q.entries))
	copy(ordered, q.entries)
	tmp := &priceTimeQueue{entries: ordered, less: q.less}
	heap.Init(tmp)
	out := make([]BookLevel, 0, len(ordered))
	for tmp.Len() > 0 {
		top := heap.Pop(tmp).(*orderEntry)
		out = append(out, BookLevel{ID: top.order.ID, Quantity: top.order.Quantity, Price: top.order.Price})
	}
	return out
}
