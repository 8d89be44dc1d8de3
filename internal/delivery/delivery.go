// Package delivery defines the contract shared by all transport entrypoints.
package delivery

import "context"

// Delivery is a transport entrypoint (HTTP server, worker, etc.) that can be
// started by the application container and blocks until the context is done
// or the entrypoint fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
