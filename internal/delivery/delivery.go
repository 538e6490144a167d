package delivery

import "context"

// Delivery is an inbound transport that serves until shut down
type Delivery interface {
	Serve(ctx context.Context) error
}
