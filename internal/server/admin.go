package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/lobengine/lobengine/internal/engine"
)

// AdminServer exposes a health check and a WebSocket trade feed fed from a
// Server's trade hub. It never touches the matching core; it only observes
// the trades the dispatcher already produced.
type AdminServer struct {
	hub      *hub[publicTrade]
	upgrader websocket.Upgrader
	log      *zap.Logger
}

type publicTrade struct {
	Symbol   string `json:"symbol"`
	Price    string `json:"price"`
	Quantity int64  `json:"quantity"`
}

// NewAdminServer builds an admin HTTP server that republishes everything
// broadcast on srv's trade hub as JSON over WebSocket.
func NewAdminServer(srv *Server, log *zap.Logger) *AdminServer {
	a := &AdminServer{
		hub:      newHub[publicTrade](),
		upgrader: websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
		log:      log,
	}

	sub := srv.TradeHub().Subscribe(64)
	go a.relay(sub)
	return a
}

// relay forwards every trade the dispatcher broadcasts, converting it to
// the admin feed's wire representation, until sub is unsubscribed.
func (a *AdminServer) relay(sub *subscription[engine.Trade]) {
	for trade := range sub.ch {
		a.publish(publicTrade{
			Symbol:   trade.Symbol,
			Price:    trade.Price.StringFixed(2),
			Quantity: trade.Quantity,
		})
	}
}

// Handler builds the admin HTTP mux: /healthz and /ws/trades.
func (a *AdminServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws/trades", a.handleTradeStream)
	return mux
}

func (a *AdminServer) handleTradeStream(w http.ResponseWriter, r *http.Request) {
	conn, err := a.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	sub := a.hub.Subscribe(32)
	defer a.hub.Unsubscribe(sub)

	for trade := range sub.ch {
		if err := conn.WriteJSON(trade); err != nil {
			return
		}
	}
}

func (a *AdminServer) publish(trade publicTrade) {
	a.hub.Broadcast(trade)
	data, _ := json.Marshal(trade)
	a.log.Debug("trade published to admin feed", zap.ByteString("trade", data))
}
