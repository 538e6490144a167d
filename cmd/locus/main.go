package main

import (
	"context"
	"log/slog"
	"os"

	"locus/config"
	"locus/internal/delivery"
	"locus/internal/delivery/http"
	"locus/internal/delivery/http/router/handler"
	"locus/internal/infra/document/pdf"
	logs "locus/internal/infra/log"
	"locus/internal/infra/panorama/streetview"
	"locus/internal/infra/route"
	"locus/internal/usecase"
	"locus/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startSession,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectService() fx.Option {
	return fx.Options(
		route.Module,
		fx.Provide(
			pdf.NewSource,
			streetview.NewProvider,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewViewerService,
			impl.NewLoader,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewViewerHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startSession fetches the route and the page count once the app is up and
// ends the session on shutdown
func startSession(ctx context.Context, lc fx.Lifecycle, loader *impl.Loader, viewer usecase.ViewerUsecase) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			// The start context expires with the start timeout; loads outlive it
			loader.Start(ctx)

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			viewer.Close()

			return loader.Stop(stopCtx)
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
