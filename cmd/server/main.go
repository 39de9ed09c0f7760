// Command server runs the matching engine behind its TCP protocol and an
// optional admin HTTP/WebSocket feed.
package main

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/lobengine/lobengine/internal/config"
	"github.com/lobengine/lobengine/internal/engine"
	"github.com/lobengine/lobengine/internal/logging"
	"github.com/lobengine/lobengine/internal/server"
)

func main() {
	var cfg config.ServerConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(logging.Level(cfg.LogLevel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	eng := engine.NewMatchingEngine()
	srv := server.New(eng, log)

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		log.Fatal("failed to listen", zap.Error(err))
	}
	log.Info("trading server started", zap.Int("port", cfg.Port))

	go func() {
		if err := srv.Serve(ln); err != nil {
			log.Error("server loop exited", zap.Error(err))
		}
	}()

	if cfg.AdminAddr != "" {
		admin := server.NewAdminServer(srv, log)
		go func() {
			log.Info("admin server started", zap.String("addr", cfg.AdminAddr))
			if err := http.ListenAndServe(cfg.AdminAddr, admin.Handler()); err != nil {
				log.Error("admin server exited", zap.Error(err))
			}
		}()
	}

	waitForShutdown(log)
	_ = ln.Close()
}

func waitForShutdown(log *zap.Logger) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	s := <-sig
	log.Info("shutting down", zap.String("signal", s.String()))
}
