package engine

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInvariantsHoldUnderRandomAdmissions drives a single book through a
// random sequence of admissions. After every step it checks that ids
// strictly increase (P4), both sides are in price priority order (P2), no
// resting order has zero quantity (I1/P3) and the book does not rest crossed
// (I2/P1); P5 is checked on the final state. Trade prices are only checked
// to be non-negative here; TestTradePriceBoundsEqualsMaker covers P6.
func TestInvariantsHoldUnderRandomAdmissions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	e := NewMatchingEngine()

	submittedBuy := int64(0)
	submittedSell := int64(0)
	tradedQty := int64(0)
	lastID := int64(0)

	for i := 0; i < 500; i++ {
		side := Buy
		if rng.Intn(2) == 1 {
			side = Sell
		}
		price := decimal.New(int64(90+rng.Intn(20)), 0)
		qty := int64(1 + rng.Intn(10))

		report, err := e.Submit("SYM", side, price, qty)
		require.NoError(t, err)

		require.Greater(t, report.Order.ID, lastID, "P4: ids must be strictly increasing")
		lastID = report.Order.ID

		if side == Buy {
			submittedBuy += qty
		} else {
			submittedSell += qty
		}

		for _, tr := range report.Trades {
			tradedQty += tr.Quantity
			assert.True(t, tr.Price.GreaterThanOrEqual(decimal.Zero))
		}

		snap, ok := e.Snapshot("SYM")
		require.True(t, ok)

		assertPriorityOrder(t, snap.Bids, true)
		assertPriorityOrder(t, snap.Asks, false)

		for _, lvl := range snap.Bids {
			assert.Greater(t, lvl.Quantity, int64(0), "I1: no zero-quantity resting orders")
		}
		for _, lvl := range snap.Asks {
			assert.Greater(t, lvl.Quantity, int64(0), "I1: no zero-quantity resting orders")
		}

		if len(snap.Bids) > 0 && len(snap.Asks) > 0 {
			assert.True(t, snap.Bids[0].Price.LessThan(snap.Asks[0].Price), "I2: book must not rest crossed")
		}
	}

	snap, ok := e.Snapshot("SYM")
	require.True(t, ok)

	restingBuy := sumQty(snap.Bids)
	restingSell := sumQty(snap.Asks)

	assert.Equal(t, submittedBuy, restingBuy+tradedQty, "P5: conservation of buy-side quantity")
	assert.Equal(t, submittedSell, restingSell+tradedQty, "P5: conservation of sell-side quantity")
}

func assertPriorityOrder(t *testing.T, levels []BookLevel, bidSide bool) {
	for i := 1; i < len(levels); i++ {
		prev, cur := levels[i-1], levels[i]
		if !prev.Price.Equal(cur.Price) {
			if bidSide {
				assert.True(t, prev.Price.GreaterThan(cur.Price), "P2: bids weakly decreasing by price")
			} else {
				assert.True(t, prev.Price.LessThan(cur.Price), "P2: asks weakly increasing by price")
			}
		}
	}
}

func sumQty(levels []BookLevel) int64 {
	var total int64
	for _, l := range levels {
		total += l.Quantity
	}
	return total
}

// TestTradePriceBoundsEqualsMaker exercises P6 directly: the execution price
// of every trade must equal the resting (earlier-sequenced) order's limit.
func TestTradePriceBoundsEqualsMaker(t *testing.T) {
	e := NewMatchingEngine()

	_, err := e.Submit("SYM", Sell, decimal.New(100, 0), 10)
	require.NoError(t, err)

	report, err := e.Submit("SYM", Buy, decimal.New(105, 0), 10)
	require.NoError(t, err)

	require.Len(t, report.Trades, 1)
	assert.True(t, report.Trades[0].Price.Equal(decimal.New(100, 0)), "maker (resting seller) sets price")
}
