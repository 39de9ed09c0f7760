package bots

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Supervisor launches a swarm of bots, each over its own TCP connection to
// the same server, and keeps them running until the context is cancelled.
type Supervisor struct {
	addr string
	log  *zap.Logger
	bots []namedBot
}

type namedBot struct {
	name string
	bot  Bot
}

// NewSupervisor builds a supervisor targeting addr with no bots yet; use Add
// to register the swarm before calling Start.
func NewSupervisor(addr string, log *zap.Logger) *Supervisor {
	return &Supervisor{addr: addr, log: log}
}

// Add registers a bot to be run under a connection named name.
func (s *Supervisor) Add(name string, bot Bot) {
	s.bots = append(s.bots, namedBot{name: name, bot: bot})
}

// DefaultSwarm wires up the reference roster for symbol: two random
// traders, a spread-capture market maker anchored at basePrice, and an
// arbitrage bot working the band around basePrice.
func (s *Supervisor) DefaultSwarm(symbol string, basePrice float64) {
	s.Add("random-trader-1", NewRandomTraderBot(symbol, basePrice-5, basePrice+5, s.log))
	s.Add("random-trader-2", NewRandomTraderBot(symbol, basePrice-5, basePrice+5, s.log))
	s.Add("spread-capture", NewSpreadCaptureBot(symbol, basePrice, s.log))
	s.Add("arbitrage", NewArbitrageBot(symbol, basePrice-1, basePrice+1, s.log))
}

// Start dials a connection for every registered bot and runs them
// concurrently until ctx is cancelled, then waits for all of them to finish
// closing their connections.
func (s *Supervisor) Start(ctx context.Context) {
	var wg sync.WaitGroup

	for _, nb := range s.bots {
		nb := nb
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.runOne(ctx, nb)
		}()
	}

	wg.Wait()
}

func (s *Supervisor) runOne(ctx context.Context, nb namedBot) {
	client, err := dialWithRetry(ctx, nb.name, s.addr, s.log)
	if err != nil {
		s.log.Error("bot could not connect", zap.String("bot", nb.name), zap.Error(err))
		return
	}
	nb.bot.Run(ctx, client)
}

func dialWithRetry(ctx context.Context, name, addr string, log *zap.Logger) (*Client, error) {
	const retryDelay = 500 * time.Millisecond
	var lastErr error

	for attempt := 0; attempt < 5; attempt++ {
		client, err := Dial(ctx, name, addr, log)
		if err == nil {
			return client, nil
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryDelay):
		}
	}
	return nil, lastErr
}
