package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"locus/config"
	"locus/internal/debounce"
	"locus/internal/domain/constants"
	"locus/internal/domain/entity"
	domainerrors "locus/internal/domain/errors"
	"locus/internal/domain/service"
	"locus/internal/domain/travel"
	"locus/internal/usecase"

	"go.uber.org/fx"
)

const defaultDebounceWindow = 500 * time.Millisecond

// viewerService implements the ViewerUsecase interface
type viewerService struct {
	panoramas service.PanoramaProvider
	logger    *slog.Logger

	// Session state; fix and panorama are derived from it on every refresh
	mu       sync.RWMutex
	session  *entity.Session
	fix      *entity.Fix
	panorama *entity.Panorama
	gen      uint64

	debouncer *debounce.Debouncer[int]

	// ctx outlives individual requests so debounced refreshes can finish
	ctx    context.Context
	cancel context.CancelFunc
}

// ViewerServiceParams holds dependencies for the viewer service, injected by Fx
type ViewerServiceParams struct {
	fx.In

	Config    *config.Config
	Panoramas service.PanoramaProvider
	Logger    *slog.Logger
}

// NewViewerService starts a new reading session
func NewViewerService(params ViewerServiceParams) usecase.ViewerUsecase {
	window := defaultDebounceWindow
	if params.Config != nil && params.Config.Viewer != nil {
		window = params.Config.Viewer.DebounceWindow
	}

	ctx, cancel := context.WithCancel(context.Background())
	session := entity.NewSession()

	s := &viewerService{
		panoramas: params.Panoramas,
		logger:    params.Logger.With(slog.String("session_id", session.ID.String())),
		session:   session,
		ctx:       ctx,
		cancel:    cancel,
	}
	s.debouncer = debounce.New(window, s.settle)

	s.logger.Info("Reading session started", slog.Duration("debounce_window", window))

	return s
}

// SetPath installs the route and recomputes the fix immediately
func (s *viewerService) SetPath(path entity.Path) {
	s.mu.Lock()
	s.session.Path = path
	s.mu.Unlock()

	s.refresh(s.ctx)
}

// SetTotalPages installs the page count and recomputes the fix immediately
func (s *viewerService) SetTotalPages(total int) {
	s.mu.Lock()
	s.session.TotalPages = total
	if total >= 1 {
		s.session.Page = clamp(s.session.Page, 1, total)
		s.session.SettledPage = clamp(s.session.SettledPage, 1, total)
	}
	s.mu.Unlock()

	s.refresh(s.ctx)
}

// GoTo moves to page; the imagery follows once navigation pauses
func (s *viewerService) GoTo(ctx context.Context, page int) (*usecase.ViewState, error) {
	if page < 1 {
		return nil, domainerrors.ErrInvalidPage.WithDetails(fmt.Sprintf("page %d", page))
	}

	s.mu.Lock()
	total := s.session.TotalPages
	if total < 1 {
		s.mu.Unlock()
		s.logger.Debug("Navigation ignored, document not loaded", slog.Int("page", page))

		return s.View(), nil
	}
	if page > total {
		s.mu.Unlock()

		return nil, domainerrors.ErrPageOutOfRange.WithDetails(fmt.Sprintf("page %d of %d", page, total))
	}
	changed := s.session.Page != page
	s.session.Page = page
	s.mu.Unlock()

	if changed {
		s.debouncer.Trigger(page)
	}

	return s.View(), nil
}

// Next steps forward one page, stopping at the last page
func (s *viewerService) Next(ctx context.Context) *usecase.ViewState {
	return s.step(1)
}

// Prev steps back one page, stopping at page 1
func (s *viewerService) Prev(ctx context.Context) *usecase.ViewState {
	return s.step(-1)
}

func (s *viewerService) step(delta int) *usecase.ViewState {
	s.mu.Lock()
	total := s.session.TotalPages
	if total < 1 {
		s.mu.Unlock()

		return s.View()
	}
	page := clamp(s.session.Page+delta, 1, total)
	changed := page != s.session.Page
	s.session.Page = page
	s.mu.Unlock()

	if changed {
		s.debouncer.Trigger(page)
	}

	return s.View()
}

// View returns a snapshot of the session
func (s *viewerService) View() *usecase.ViewState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state := &usecase.ViewState{
		SessionID:   s.session.ID,
		Page:        s.session.Page,
		SettledPage: s.session.SettledPage,
		TotalPages:  s.session.TotalPages,
		Progress:    travel.Fraction(entity.ReadingProgress{Page: s.session.Page, TotalPages: s.session.TotalPages}),
		RoutePoints: s.session.Path.Len(),
		RouteKm:     s.session.Path.LengthKm(),
	}

	if s.fix == nil {
		state.Loading = loadingMessage(s.session)

		return state
	}

	fix := *s.fix
	state.Ready = true
	state.Fix = &fix
	if s.panorama != nil {
		pano := *s.panorama
		state.Panorama = &pano
	}

	return state
}

// Route returns the loaded path
func (s *viewerService) Route() entity.Path {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session.Path
}

// PanoramaImage fetches the image for the current fix
func (s *viewerService) PanoramaImage(ctx context.Context) (*usecase.PanoramaImage, error) {
	s.mu.RLock()
	pano := s.panorama
	s.mu.RUnlock()

	if pano == nil {
		return nil, domainerrors.ErrViewNotReady
	}

	body, contentType, err := s.panoramas.Fetch(ctx, pano)
	if err != nil {
		return nil, domainerrors.NewUpstreamError(domainerrors.ErrPanoramaUnavailable, err)
	}

	return &usecase.PanoramaImage{Body: body, ContentType: contentType}, nil
}

// Close drops any pending refresh and cancels in-flight rendering
func (s *viewerService) Close() {
	s.debouncer.Stop()
	s.cancel()
	s.logger.Info("Reading session closed")
}

// settle is the debounced end of a navigation burst
func (s *viewerService) settle(page int) {
	s.mu.Lock()
	// The page count may have shrunk while the window was open
	if total := s.session.TotalPages; total >= 1 {
		page = clamp(page, 1, total)
	}
	s.session.SettledPage = page
	s.mu.Unlock()

	s.refresh(s.ctx)
}

// refresh maps the settled page onto the path and asks for imagery there
func (s *viewerService) refresh(ctx context.Context) {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	progress := s.session.Progress()
	pathLen := s.session.Path.Len()
	fix, ok := travel.Locate(s.session.Path, progress)
	if !ok {
		s.fix = nil
		s.panorama = nil
		s.mu.Unlock()
		s.logger.Debug("View not ready",
			slog.Int("route_points", pathLen),
			slog.Int("total_pages", progress.TotalPages),
		)

		return
	}
	// The previous image no longer matches the fix
	s.fix = &fix
	s.panorama = nil
	s.mu.Unlock()

	pano, err := s.panoramas.Render(ctx, fix.Position, fix.Bearing)
	if err != nil {
		s.logger.Error("Panorama render failed",
			slog.Int("index", fix.Index),
			slog.Any("error", err),
		)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// A newer refresh has already replaced the fix
	if gen != s.gen {
		return
	}
	s.panorama = pano

	s.logger.Debug("View refreshed",
		slog.Int("page", progress.Page),
		slog.Int("index", fix.Index),
		slog.Float64("bearing", fix.Bearing.Degrees()),
	)
}

func loadingMessage(session *entity.Session) string {
	if session.Path.Len() < travel.MinPathLength {
		return constants.LoadingDirections
	}

	return constants.LoadingDocument
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
