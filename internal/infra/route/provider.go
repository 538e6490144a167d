package route

import (
	"log/slog"

	"locus/config"
	"locus/internal/domain/constants"
	"locus/internal/domain/service"
	"locus/internal/infra/route/file"
	"locus/internal/infra/route/osrm"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProviderParams holds dependencies for RouteProvider, injected by Fx
type ProviderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewRouteProvider creates a RouteProvider based on configuration
func NewRouteProvider(params ProviderParams) (service.RouteProvider, error) {
	cfg := params.Config.Route
	logger := params.Logger

	if cfg == nil {
		return nil, errors.New("route configuration is required")
	}

	switch cfg.Provider {
	case constants.RouteProviderOSRM:
		origin, err := osrm.ParseCoordinate(cfg.Origin)
		if err != nil {
			return nil, errors.Wrap(err, "route.origin")
		}
		destination, err := osrm.ParseCoordinate(cfg.Destination)
		if err != nil {
			return nil, errors.Wrap(err, "route.destination")
		}
		logger.Info("Using OSRM route provider",
			slog.String("base_url", cfg.OSRM.BaseURL),
			slog.String("profile", cfg.OSRM.Profile),
		)

		return osrm.NewClient(cfg.OSRM.BaseURL, cfg.OSRM.Profile, origin, destination, cfg.OSRM.Timeout, logger), nil

	case constants.RouteProviderFile:
		if cfg.File.Path == "" {
			return nil, errors.New("route file path is required for file provider")
		}
		logger.Info("Using file route provider", slog.String("path", cfg.File.Path))

		return file.NewLoader(cfg.File.Path), nil

	default:
		return nil, errors.Errorf("unknown route provider: %s", cfg.Provider)
	}
}

// Module provides the route FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRouteProvider),
)
