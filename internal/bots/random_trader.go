package bots

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"
)

// RandomTraderBot submits random BUY/SELL orders within a price band,
// mirroring the reference random_trader_bot: it does not read the book at
// all, it just generates flow.
type RandomTraderBot struct {
	Symbol     string
	MinPrice   float64
	MaxPrice   float64
	MinQty     int64
	MaxQty     int64
	MinWait    time.Duration
	MaxWait    time.Duration
	rng        *rand.Rand
	log        *zap.Logger
}

// NewRandomTraderBot builds a RandomTraderBot with the reference defaults
// (quantities 10-100, wait 1-5s).
func NewRandomTraderBot(symbol string, minPrice, maxPrice float64, log *zap.Logger) *RandomTraderBot {
	return &RandomTraderBot{
		Symbol:   symbol,
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		MinQty:   10,
		MaxQty:   100,
		MinWait:  1 * time.Second,
		MaxWait:  5 * time.Second,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		log:      log,
	}
}

func (b *RandomTraderBot) Run(ctx context.Context, client *Client) {
	defer client.Close()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		side := "BUY"
		if b.rng.Intn(2) == 1 {
			side = "SELL"
		}
		price := math.Round((b.MinPrice+b.rng.Float64()*(b.MaxPrice-b.MinPrice))*100) / 100
		quantity := b.MinQty + b.rng.Int63n(b.MaxQty-b.MinQty+1)

		cmd := fmt.Sprintf("ADD_ORDER %s %s %.2f %d", side, b.Symbol, price, quantity)
		response, err := client.SendCommand(cmd)
		if err != nil {
			b.log.Warn("random trader send failed", zap.Error(err))
			return
		}

		b.log.Info("random trader order",
			zap.String("side", side), zap.Int64("quantity", quantity), zap.Float64("price", price),
			zap.Bool("matched", strings.Contains(response, "TRADE EXECUTED")))

		waitRange := b.MaxWait - b.MinWait
		wait := b.MinWait
		if waitRange > 0 {
			wait += time.Duration(b.rng.Int63n(int64(waitRange)))
		}
		if !sleep(ctx, wait) {
			return
		}
	}
}
