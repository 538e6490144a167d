package usecase

import (
	"context"
	"io"

	"locus/internal/domain/entity"

	"github.com/google/uuid"
)

// ViewState is everything the reader's screen needs at one moment
type ViewState struct {
	SessionID   uuid.UUID `json:"session_id"`
	Page        int       `json:"page"`         // Page the reader asked for
	SettledPage int       `json:"settled_page"` // Page the imagery reflects
	TotalPages  int       `json:"total_pages"`  // Zero until the document has loaded
	Progress    float64   `json:"progress"`     // Page / TotalPages, for the progress bar
	RoutePoints int       `json:"route_points"`
	RouteKm     float64   `json:"route_km"`

	// Ready is false while the route or the page count is missing; Loading
	// then says which one is being waited for.
	Ready   bool   `json:"ready"`
	Loading string `json:"loading,omitempty"`

	Fix      *entity.Fix      `json:"fix,omitempty"`
	Panorama *entity.Panorama `json:"panorama,omitempty"`
}

// PanoramaImage is a fetched street-level image
type PanoramaImage struct {
	Body        io.ReadCloser
	ContentType string
}

// ViewerUsecase drives one reading session: it receives readiness events
// and page navigation and keeps the route position in step
type ViewerUsecase interface {
	// SetPath installs the route once it has been fetched
	SetPath(path entity.Path)

	// SetTotalPages installs the document page count once it is known
	SetTotalPages(total int)

	// GoTo moves to a page. Pages outside the document are rejected; before
	// the page count is known the request is ignored.
	GoTo(ctx context.Context, page int) (*ViewState, error)

	// Next and Prev step one page, clamped to the document
	Next(ctx context.Context) *ViewState
	Prev(ctx context.Context) *ViewState

	// View returns the current state
	View() *ViewState

	// Route returns the path, nil while it is not loaded
	Route() entity.Path

	// PanoramaImage fetches the image for the current fix
	PanoramaImage(ctx context.Context) (*PanoramaImage, error)

	// Close stops pending imagery refreshes
	Close()
}
