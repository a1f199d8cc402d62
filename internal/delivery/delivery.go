// Package delivery defines the contract implemented by every inbound transport.
package delivery

import "context"

// Delivery is a long-running inbound transport started by the process entrypoint.
type Delivery interface {
	Serve(ctx context.Context) error
}
