// Package server provides HTTP and WebSocket handlers
package server

import "time"

// Server configuration constants
const (
	// Per-connection sliding-window rate limit. Sized for a client streaming
	// frames at the analysis rate with headroom for control messages.
	RateLimitMessages = 30
	RateLimitWindow   = time.Second

	// Maximum accepted reference upload body.
	MaxReferenceBytes = 16 << 20
)
