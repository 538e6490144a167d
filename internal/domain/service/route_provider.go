package service

import (
	"context"

	"locus/internal/domain/entity"
)

// RouteProvider supplies the route the reader travels along
type RouteProvider interface {
	// Route returns the ordered points from origin to destination. It is
	// called once per session.
	Route(ctx context.Context) (entity.Path, error)

	// Name identifies the provider in logs
	Name() string
}
