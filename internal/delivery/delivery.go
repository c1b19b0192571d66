// Package delivery holds the transports that expose the use cases.
package delivery

import "context"

// Delivery is a long-running transport started by the application once fx has built the graph.
type Delivery interface {
	// Serve blocks until the transport stops. It returns nil after a graceful shutdown.
	Serve(ctx context.Context) error
}
