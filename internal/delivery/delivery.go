// Package delivery defines the contract every transport surface implements.
package delivery

import "context"

// Delivery is a serving surface (HTTP today). Serve blocks until the surface
// stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
