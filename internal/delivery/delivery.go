// Package delivery defines the transport entry points of the service.
package delivery

import "context"

// Delivery is a transport that serves requests until its context is cancelled
// or the application stops it through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
