package streetview

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"locus/config"
	"locus/internal/domain/entity"
	"locus/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultContentType = "image/jpeg"

// provider builds Street View Static API requests
type provider struct {
	baseURL    string
	apiKey     string
	width      int
	height     int
	pitch      float64
	fov        float64
	httpClient *http.Client
	logger     *slog.Logger
}

// ProviderParams holds dependencies for the panorama provider, injected by Fx
type ProviderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewProvider creates a PanoramaProvider backed by the Street View Static API
func NewProvider(params ProviderParams) (service.PanoramaProvider, error) {
	cfg := params.Config.Panorama
	if cfg == nil {
		return nil, errors.New("panorama configuration is required")
	}

	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, errors.Wrap(err, "panorama.baseUrl")
	}

	if cfg.APIKey == "" {
		params.Logger.Warn("Panorama API key is empty, image requests will likely be rejected")
	}

	return &provider{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		width:      cfg.Width,
		height:     cfg.Height,
		pitch:      cfg.Pitch,
		fov:        cfg.FOV,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     params.Logger,
	}, nil
}

// Render builds the image request for a location and heading
func (p *provider) Render(ctx context.Context, location entity.GeoPoint, heading entity.Bearing) (*entity.Panorama, error) {
	if !location.Valid() {
		return nil, errors.Errorf("invalid panorama location %+v", location)
	}

	u, err := url.Parse(p.baseURL)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	query := u.Query()
	query.Set("size", fmt.Sprintf("%dx%d", p.width, p.height))
	query.Set("location", formatCoord(location.Lat)+","+formatCoord(location.Lng))
	query.Set("heading", strconv.FormatFloat(heading.Degrees(), 'f', 2, 64))
	query.Set("pitch", strconv.FormatFloat(p.pitch, 'f', -1, 64))
	query.Set("fov", strconv.FormatFloat(p.fov, 'f', -1, 64))
	if p.apiKey != "" {
		query.Set("key", p.apiKey)
	}
	u.RawQuery = query.Encode()

	return &entity.Panorama{
		Location: location,
		Heading:  heading,
		URL:      u.String(),
	}, nil
}

// Fetch downloads the rendered image
func (p *provider) Fetch(ctx context.Context, panorama *entity.Panorama) (io.ReadCloser, string, error) {
	if panorama == nil || panorama.URL == "" {
		return nil, "", errors.New("panorama has no image url")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, panorama.URL, nil)
	if err != nil {
		return nil, "", errors.WithStack(err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, "", errors.Wrap(err, "panorama request failed")
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()

		return nil, "", errors.Errorf("panorama provider returned status %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = defaultContentType
	}

	p.logger.Debug("Panorama fetched",
		slog.Float64("lat", panorama.Location.Lat),
		slog.Float64("lng", panorama.Location.Lng),
		slog.Float64("heading", panorama.Heading.Degrees()),
	)

	return resp.Body, contentType, nil
}

// formatCoord keeps six decimals, about 10 cm, which is finer than imagery spacing
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
