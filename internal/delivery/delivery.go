// Package delivery defines the contract every transport entry point
// implements, so the composition root can start them uniformly.
package delivery

import "context"

// Delivery is one serving surface of the application.
type Delivery interface {
	// Serve blocks, serving requests until the context is cancelled or
	// the server is shut down.
	Serve(ctx context.Context) error
}
