package engine

import "errors"

// Error kinds at the engine boundary. Protocol-level validation in
// internal/server catches malformed commands before they reach the engine;
// these remain as defensive guards against direct misuse of the package.
var (
	// ErrInvalidSymbol is returned when an order's symbol does not match the
	// book it was routed to. Not reachable from valid protocol traffic.
	ErrInvalidSymbol = errors.New("order symbol does not match book symbol")

	// ErrInvalidArguments is returned when price or quantity is non-positive.
	ErrInvalidArguments = errors.New("price and quantity must be positive")
)
