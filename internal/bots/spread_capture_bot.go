package bots

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// SpreadCaptureBot quotes both sides of the book around a slowly drifting
// mid price, the way the reference market_maker_bot does: every tick it
// re-quotes BUY at mid-spread and SELL at mid+spread, then nudges mid by a
// small random step.
type SpreadCaptureBot struct {
	Symbol    string
	Spread    float64
	OrderSize int64
	basePrice float64
	rng       *rand.Rand
	log       *zap.Logger
}

// NewSpreadCaptureBot builds a SpreadCaptureBot anchored at basePrice, using
// the reference bot's defaults of a $0.50 spread and 50-share clips.
func NewSpreadCaptureBot(symbol string, basePrice float64, log *zap.Logger) *SpreadCaptureBot {
	return &SpreadCaptureBot{
		Symbol:    symbol,
		Spread:    0.50,
		OrderSize: 50,
		basePrice: basePrice,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		log:       log,
	}
}

func (b *SpreadCaptureBot) Run(ctx context.Context, client *Client) {
	defer client.Close()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		b.placeQuotes(client)
		b.basePrice += float64(b.rng.Intn(3)-1) * 0.25

		if !sleep(ctx, 2*time.Second) {
			return
		}
	}
}

func (b *SpreadCaptureBot) placeQuotes(client *Client) {
	buyPrice := round2(b.basePrice - b.Spread)
	sellPrice := round2(b.basePrice + b.Spread)

	if _, err := client.SendCommand(fmt.Sprintf("ADD_ORDER BUY %s %.2f %d", b.Symbol, buyPrice, b.OrderSize)); err != nil {
		b.log.Warn("spread capture buy failed", zap.Error(err))
		return
	}
	if _, err := client.SendCommand(fmt.Sprintf("ADD_ORDER SELL %s %.2f %d", b.Symbol, sellPrice, b.OrderSize)); err != nil {
		b.log.Warn("spread capture sell failed", zap.Error(err))
		return
	}

	b.log.Info("spread capture quotes placed",
		zap.Float64("buy_price", buyPrice), zap.Float64("sell_price", sellPrice))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
