package service

import (
	"context"
	"io"

	"locus/internal/domain/entity"
)

// PanoramaProvider renders street-level imagery for a position and heading
type PanoramaProvider interface {
	// Render describes the image for the given position facing heading
	Render(ctx context.Context, location entity.GeoPoint, heading entity.Bearing) (*entity.Panorama, error)

	// Fetch downloads the image bytes; the caller closes the reader
	Fetch(ctx context.Context, panorama *entity.Panorama) (io.ReadCloser, string, error)
}
