package bots

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

var priceLinePattern = regexp.MustCompile(`(\d+)\s+@\s+\$(\d+\.\d+)`)

// bookSnapshot is the best-bid/best-ask view an ArbitrageBot extracts from a
// SHOW_ORDERS response. valid is false when neither side had any orders.
type bookSnapshot struct {
	bestBid float64
	bestAsk float64
	valid   bool
}

// ArbitrageBot watches a symbol's best bid/ask via SHOW_ORDERS and trades
// against a fixed buy/sell target band, mirroring the reference
// arbitrage_bot: buy when the ask drops below TargetBuyPrice while flat,
// sell when the bid rises above TargetSellPrice while long.
type ArbitrageBot struct {
	Symbol         string
	TargetBuyPrice float64
	TargetSellPrice float64
	TradeSize      int64
	position       int64
	totalProfit    float64
	lastBuyPrice   float64
	log            *zap.Logger
}

// NewArbitrageBot builds an ArbitrageBot that buys below buyTarget and sells
// above sellTarget, using the reference bot's 50-share default clip.
func NewArbitrageBot(symbol string, buyTarget, sellTarget float64, log *zap.Logger) *ArbitrageBot {
	return &ArbitrageBot{
		Symbol:          symbol,
		TargetBuyPrice:  buyTarget,
		TargetSellPrice: sellTarget,
		TradeSize:       50,
		log:             log,
	}
}

func (b *ArbitrageBot) Run(ctx context.Context, client *Client) {
	defer client.Close()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		book, err := b.fetchBook(client)
		if err != nil {
			b.log.Warn("arbitrage book fetch failed", zap.Error(err))
			return
		}

		if !book.valid {
			b.log.Info("waiting for orders to appear in book")
			if !sleep(ctx, 2*time.Second) {
				return
			}
			continue
		}

		if book.bestBid > 0 && book.bestAsk > 0 {
			b.log.Info("market snapshot",
				zap.Float64("bid", book.bestBid), zap.Float64("ask", book.bestAsk),
				zap.Float64("spread", book.bestAsk-book.bestBid))
		}

		if book.bestAsk > 0 && book.bestAsk < b.TargetBuyPrice && b.position <= 0 {
			if err := b.trade(client, "BUY", book.bestAsk); err != nil {
				b.log.Warn("arbitrage buy failed", zap.Error(err))
				return
			}
		}

		if book.bestBid > 0 && book.bestBid > b.TargetSellPrice && b.position > 0 {
			profit := (book.bestBid - b.lastBuyPrice) * float64(b.TradeSize)
			b.totalProfit += profit
			if err := b.trade(client, "SELL", book.bestBid); err != nil {
				b.log.Warn("arbitrage sell failed", zap.Error(err))
				return
			}
			b.log.Info("trade profit", zap.Float64("profit", profit), zap.Float64("total_profit", b.totalProfit))
		}

		if !sleep(ctx, 500*time.Millisecond) {
			return
		}
	}
}

func (b *ArbitrageBot) trade(client *Client, side string, price float64) error {
	cmd := fmt.Sprintf("ADD_ORDER %s %s %.2f %d", side, b.Symbol, price, b.TradeSize)
	if _, err := client.SendCommand(cmd); err != nil {
		return err
	}

	if side == "BUY" {
		b.position += b.TradeSize
		b.lastBuyPrice = price
	} else {
		b.position -= b.TradeSize
	}
	b.log.Info("arbitrage trade executed",
		zap.String("side", side), zap.Float64("price", price), zap.Int64("position", b.position))
	return nil
}

func (b *ArbitrageBot) fetchBook(client *Client) (bookSnapshot, error) {
	response, err := client.SendCommand("SHOW_ORDERS " + b.Symbol)
	if err != nil {
		return bookSnapshot{}, err
	}

	var snapshot bookSnapshot
	inBuySection, inSellSection := false, false

	for _, line := range strings.Split(response, "\n") {
		switch {
		case strings.Contains(line, "BUY ORDERS"):
			inBuySection, inSellSection = true, false
			continue
		case strings.Contains(line, "SELL ORDERS"):
			inBuySection, inSellSection = false, true
			continue
		}

		matches := priceLinePattern.FindStringSubmatch(line)
		if matches == nil {
			continue
		}
		price, err := strconv.ParseFloat(matches[2], 64)
		if err != nil {
			continue
		}

		if inBuySection && snapshot.bestBid == 0 {
			snapshot.bestBid = price
		}
		if inSellSection && snapshot.bestAsk == 0 {
			snapshot.bestAsk = price
		}
	}

	snapshot.valid = snapshot.bestBid > 0 || snapshot.bestAsk > 0
	return snapshot, nil
}
