// Package delivery defines the transport entrypoints started by the application.
package delivery

import "context"

// Delivery is a long-running server, e.g. the HTTP API.
type Delivery interface {
	Serve(ctx context.Context) error
}
