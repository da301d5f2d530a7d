// Package grpcclient provides a client for the Python vision inference gRPC server
package grpcclient

import "time"

// Client configuration defaults
const (
	// Keepalive configuration
	DefaultKeepaliveTime    = 10 * time.Second
	DefaultKeepaliveTimeout = 3 * time.Second

	// Health check configuration
	HealthCheckTimeout = 2 * time.Second

	// Reference analysis runs larger models than the frame path.
	ReferenceTimeout = 15 * time.Second
)
