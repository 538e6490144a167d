package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"locus/internal/domain/entity"
	"locus/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

const codeOK = "Ok"

// routeResponse is the subset of the OSRM route service reply we read
type routeResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Distance float64          `json:"distance"`
		Duration float64          `json:"duration"`
		Geometry geojson.Geometry `json:"geometry"`
	} `json:"routes"`
}

// Client fetches driving routes from an OSRM server
type Client struct {
	baseURL     string
	profile     string
	origin      entity.GeoPoint
	destination entity.GeoPoint
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewClient creates an OSRM route provider between two fixed points
func NewClient(baseURL, profile string, origin, destination entity.GeoPoint, timeout time.Duration, logger *slog.Logger) service.RouteProvider {
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		profile:     profile,
		origin:      origin,
		destination: destination,
		httpClient:  &http.Client{Timeout: timeout},
		logger:      logger,
	}
}

// Name identifies the provider in logs
func (c *Client) Name() string {
	return "osrm"
}

// Route requests the full-resolution geometry of the best route
func (c *Client) Route(ctx context.Context) (entity.Path, error) {
	url := fmt.Sprintf("%s/route/v1/%s/%.6f,%.6f;%.6f,%.6f?overview=full&geometries=geojson",
		c.baseURL, c.profile,
		c.origin.Lng, c.origin.Lat,
		c.destination.Lng, c.destination.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "osrm request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("osrm returned status %d", resp.StatusCode)
	}

	var parsed routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, errors.Wrap(err, "decode osrm response")
	}

	if parsed.Code != codeOK {
		return nil, errors.Errorf("osrm returned code %s: %s", parsed.Code, parsed.Message)
	}
	if len(parsed.Routes) == 0 {
		return nil, errors.New("osrm returned no routes")
	}

	best := parsed.Routes[0]
	line, ok := best.Geometry.Geometry().(orb.LineString)
	if !ok {
		return nil, errors.Errorf("osrm geometry is %s, want LineString", best.Geometry.Type)
	}
	if len(line) == 0 {
		return nil, errors.New("osrm returned an empty geometry")
	}

	path := make(entity.Path, len(line))
	for i, pt := range line {
		path[i] = entity.NewGeoPointFromOrb(pt)
	}

	c.logger.Debug("OSRM route received",
		slog.Int("points", len(path)),
		slog.Float64("distance_m", best.Distance),
		slog.Float64("duration_s", best.Duration),
	)

	return path, nil
}
