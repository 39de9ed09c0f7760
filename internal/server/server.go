package server

import (
	"bufio"
	"net"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lobengine/lobengine/internal/engine"
)

// Server is the TCP session dispatcher: it accepts connections and runs one
// goroutine per connection, each parsing lines and invoking eng directly.
// There is no per-connection state beyond the net.Conn itself; orders
// admitted by a connection outlive its disconnection, per spec.
type Server struct {
	eng      *engine.MatchingEngine
	log      *zap.Logger
	tradeHub *hub[engine.Trade]
}

// New builds a Server around an existing engine and logger.
func New(eng *engine.MatchingEngine, log *zap.Logger) *Server {
	return &Server{eng: eng, log: log, tradeHub: newHub[engine.Trade]()}
}

// TradeHub exposes the trade broadcast feed for the admin HTTP/WebSocket
// server to subscribe to; it is fed exclusively from Dispatch, never from
// matching itself.
func (s *Server) TradeHub() *hub[engine.Trade] { return s.tradeHub }

// Serve accepts connections on ln until it is closed. Each connection is
// handled on its own goroutine and never blocks the accept loop.
func (s *Server) Serve(ln net.Listener) error {
	for {
		conn, err := ln.Accept()
		if err != nil {
			return err
		}
		go s.handleConn(conn)
	}
}

func (s *Server) handleConn(conn net.Conn) {
	connID := uuid.New().String()
	log := s.log.With(zap.String("conn_id", connID), zap.String("remote_addr", conn.RemoteAddr().String()))
	log.Info("client connected")
	defer func() {
		conn.Close()
		log.Info("client disconnected")
	}()

	hooks := Hooks{
		OnTrade: s.tradeHub.Broadcast,
		OnAdmit: func(report engine.Report) {
			log.Info("order admitted",
				zap.Int64("order_id", report.Order.ID),
				zap.String("symbol", report.Order.Symbol),
				zap.Int("trades", len(report.Trades)))
		},
	}

	reader := bufio.NewScanner(conn)
	for reader.Scan() {
		line := reader.Text()
		response, shouldClose := Dispatch(s.eng, line, hooks)

		if _, err := conn.Write([]byte(response)); err != nil {
			log.Warn("write failed", zap.Error(err))
			return
		}
		if shouldClose {
			return
		}
	}
	if err := reader.Err(); err != nil {
		log.Warn("read failed", zap.Error(err))
	}
}
