package engine

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
)

func BenchmarkSubmitThroughput(b *testing.B) {
	e := NewMatchingEngine()
	rng := rand.New(rand.NewSource(42))

	const base = 10_000
	const width = 100

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		side := Buy
		var priceOffset int64
		if rng.Intn(2) == 1 {
			side = Sell
			priceOffset = -rng.Int63n(width)
		} else {
			priceOffset = rng.Int63n(width)
		}
		price := decimal.New(base+priceOffset, 0)
		qty := rng.Int63n(5) + 1

		if _, err := e.Submit("SIM", side, price, qty); err != nil {
			b.Fatalf("submit failed: %v", err)
		}
	}
}

func BenchmarkSnapshot(b *testing.B) {
	e := NewMatchingEngine()
	for i := 0; i < 200; i++ {
		side := Buy
		if i%2 == 1 {
			side = Sell
		}
		if _, err := e.Submit("SIM", side, decimal.New(int64(100+i%50), 0), int64(1+i%5)); err != nil {
			b.Fatalf("submit failed: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		e.Snapshot("SIM")
	}
}
