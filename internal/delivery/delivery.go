// Package delivery defines the contract every transport entrypoint implements.
package delivery

import "context"

// Delivery is a serving surface (HTTP server, worker, ...) run by main.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
