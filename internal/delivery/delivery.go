// Package delivery defines the contract every transport entrypoint
// (HTTP webhook, worker, scheduler) fulfills so cmd binaries can run them
// interchangeably.
package delivery

import "context"

// Delivery is a long-running transport server.
type Delivery interface {
	// Serve blocks until the server stops or the context is cancelled.
	Serve(ctx context.Context) error
}
