package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"locus/internal/domain/service"
	"locus/internal/usecase"
	"locus/internal/util"

	"go.uber.org/fx"
)

// LoaderParams holds dependencies for the readiness loader, injected by Fx
type LoaderParams struct {
	fx.In

	Viewer   usecase.ViewerUsecase
	Route    service.RouteProvider
	Document service.DocumentSource
	Logger   *slog.Logger
}

// Loader fetches the path and the page count once and hands them to the viewer.
// A failed load is logged and leaves the viewer waiting on that input.
type Loader struct {
	viewer   usecase.ViewerUsecase
	route    service.RouteProvider
	document service.DocumentSource
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewLoader creates a new Loader
func NewLoader(params LoaderParams) *Loader {
	return &Loader{
		viewer:   params.Viewer,
		route:    params.Route,
		document: params.Document,
		logger:   params.Logger,
	}
}

// Start launches both loads in the background
func (l *Loader) Start(ctx context.Context) {
	ctx, l.cancel = context.WithCancel(ctx)

	l.wg.Add(2)
	go func() {
		defer l.wg.Done()
		l.loadRoute(ctx)
	}()
	go func() {
		defer l.wg.Done()
		l.loadDocument(ctx)
	}()
}

// Wait blocks until both loads have finished
func (l *Loader) Wait() {
	l.wg.Wait()
}

// Stop cancels outstanding loads and waits for them to return
func (l *Loader) Stop(ctx context.Context) error {
	if l.cancel != nil {
		l.cancel()
	}

	done := make(chan struct{})
	go func() {
		l.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Loader) loadRoute(ctx context.Context) {
	start := time.Now()
	logger := l.logger.With(slog.String("provider", l.route.Name()))

	path, err := l.route.Route(ctx)
	if err != nil {
		logger.Error("Route service failed", slog.Any("error", err))

		return
	}
	if path.Len() == 0 {
		logger.Error("Route service returned no points")

		return
	}

	l.viewer.SetPath(path)

	logger.Info("Route loaded",
		slog.Int("points", path.Len()),
		slog.String("length", util.FormatDistance(path.LengthKm())),
		slog.String("elapsed", util.FormatDuration(time.Since(start))),
	)
}

func (l *Loader) loadDocument(ctx context.Context) {
	start := time.Now()
	logger := l.logger.With(slog.String("document", l.document.Path()))

	total, err := l.document.PageCount(ctx)
	if err != nil {
		logger.Error("Document could not be opened", slog.Any("error", err))

		return
	}
	if total < 1 {
		logger.Error("Document has no pages")

		return
	}

	l.viewer.SetTotalPages(total)

	logger.Info("Document loaded",
		slog.Int("pages", total),
		slog.String("elapsed", util.FormatDuration(time.Since(start))),
	)
}
