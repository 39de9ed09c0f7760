// Package bots implements sample TCP trading clients that drive the
// matching engine over its public wire protocol, the way a real deployment
// would run market-data generators or simple algos against the server.
package bots

import (
	"context"
	"fmt"
	"net"
	"time"

	"go.uber.org/zap"
)

// Client is a minimal TCP client for the ADD_ORDER/SHOW_ORDERS/DISCONNECT
// protocol. It has no retry or reconnection logic, mirroring the reference
// bots, which treat a connection failure as fatal to that bot's run.
type Client struct {
	conn net.Conn
	name string
	log  *zap.Logger
}

// Dial connects to addr and names the resulting client for log lines.
func Dial(ctx context.Context, name, addr string, log *zap.Logger) (*Client, error) {
	dialer := net.Dialer{}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("%s: connect to %s: %w", name, addr, err)
	}
	c := &Client{conn: conn, name: name, log: log}
	c.logMessage("connected to trading server")
	return c, nil
}

// SendCommand writes one protocol line and reads back the single response
// the server sends for it.
func (c *Client) SendCommand(command string) (string, error) {
	if _, err := c.conn.Write([]byte(command + "\n")); err != nil {
		return "", fmt.Errorf("%s: send failed: %w", c.name, err)
	}

	buf := make([]byte, 4096)
	_ = c.conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	n, err := c.conn.Read(buf)
	if err != nil {
		return "", fmt.Errorf("%s: receive failed: %w", c.name, err)
	}
	return string(buf[:n]), nil
}

// Close sends DISCONNECT and closes the underlying connection.
func (c *Client) Close() {
	_, _ = c.conn.Write([]byte("DISCONNECT\n"))
	_ = c.conn.Close()
	c.logMessage("disconnected from server")
}

func (c *Client) logMessage(msg string) {
	if c.log == nil {
		return
	}
	c.log.Info(msg, zap.String("bot", c.name))
}
