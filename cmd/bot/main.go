// Command bot runs one sample trading strategy against a running matching
// server, for manual testing and demos.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/lobengine/lobengine/internal/bots"
	"github.com/lobengine/lobengine/internal/config"
	"github.com/lobengine/lobengine/internal/logging"
)

func main() {
	var cfg config.BotConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	strategy := flag.String("strategy", "random-trader", "one of: random-trader, spread-capture, arbitrage, swarm")
	basePrice := flag.Float64("base-price", 150.0, "anchor price for market-making/arbitrage strategies")
	band := flag.Float64("band", 5.0, "price band half-width for the random trader")
	flag.Parse()

	log, err := logging.New(logging.Level(cfg.LogLevel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		cancel()
	}()

	if *strategy == "swarm" {
		sup := bots.NewSupervisor(cfg.ServerAddr, log)
		sup.DefaultSwarm(cfg.Symbol, *basePrice)
		sup.Start(ctx)
		return
	}

	client, err := bots.Dial(ctx, *strategy, cfg.ServerAddr, log)
	if err != nil {
		log.Fatal("could not connect to server", zap.Error(err))
	}

	var bot bots.Bot
	switch *strategy {
	case "random-trader":
		bot = bots.NewRandomTraderBot(cfg.Symbol, *basePrice-*band, *basePrice+*band, log)
	case "spread-capture":
		bot = bots.NewSpreadCaptureBot(cfg.Symbol, *basePrice, log)
	case "arbitrage":
		bot = bots.NewArbitrageBot(cfg.Symbol, *basePrice-1, *basePrice+1, log)
	default:
		log.Fatal("unknown strategy", zap.String("strategy", *strategy))
	}

	bot.Run(ctx, client)
}
