package pdf

import (
	"context"
	"log/slog"
	"os"
	"time"

	"locus/config"
	"locus/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	seehuhnpdf "seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/pagetree"
)

// Source is a PDF document on the local filesystem
type Source struct {
	path   string
	logger *slog.Logger
}

// SourceParams holds dependencies for Source, injected by Fx
type SourceParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewSource creates a DocumentSource for the configured PDF
func NewSource(params SourceParams) service.DocumentSource {
	return &Source{
		path:   params.Config.Document.Path,
		logger: params.Logger,
	}
}

// Path returns the location of the PDF file
func (s *Source) Path() string {
	return s.path
}

// PageCount reads the page tree of the PDF and returns its page count
func (s *Source) PageCount(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, errors.WithStack(err)
	}

	start := time.Now()

	f, err := os.Open(s.path)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer f.Close()

	r, err := seehuhnpdf.NewReader(f, nil)
	if err != nil {
		return 0, errors.Wrapf(err, "open pdf %s", s.path)
	}
	defer r.Close()

	count, err := pagetree.NumPages(r)
	if err != nil {
		return 0, errors.Wrapf(err, "read page tree of %s", s.path)
	}
	if count < 1 {
		return 0, errors.Errorf("pdf %s has no pages", s.path)
	}

	s.logger.Debug("PDF page tree read",
		slog.String("path", s.path),
		slog.Int("pages", count),
		slog.Duration("elapsed", time.Since(start)),
	)

	return count, nil
}
