package main

import (
	"context"
	"log/slog"

	"outcome/config"
	"outcome/internal/delivery"
	"outcome/internal/delivery/http"
	"outcome/internal/delivery/http/middleware"
	"outcome/internal/delivery/http/router/handler"
	logs "outcome/internal/infra/log"
	"outcome/internal/infra/persistence/postgres"
	"outcome/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewNoteRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNoteService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewNoteHandler,
			handler.NewTestHandler,
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

// startServer launches every delivery once all OnStart hooks (DB ping, migrations) have succeeded.
func startServer(ctx context.Context, params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			for _, d := range params.Deliveries {
				go serve(ctx, d, params.Shutdowner)
			}

			return nil
		},
	})
}

func serve(ctx context.Context, d delivery.Delivery, shutdowner fx.Shutdowner) {
	if err := d.Serve(ctx); err != nil {
		slog.Error("Failed to start server", slog.Any("error", err))

		// Trigger graceful shutdown to execute all OnStop hooks
		if shutdownErr := shutdowner.Shutdown(fx.ExitCode(1)); shutdownErr != nil {
			slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
		}
	}
}
