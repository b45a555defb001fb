package main

import (
	"context"
	"log/slog"

	"passwarden/config"
	"passwarden/internal/delivery"
	"passwarden/internal/delivery/api"
	"passwarden/internal/delivery/api/middleware"
	"passwarden/internal/delivery/api/router/handler"
	"passwarden/internal/domain/service"
	"passwarden/internal/infra/auth"
	logs "passwarden/internal/infra/log"
	"passwarden/internal/infra/metrics"
	"passwarden/internal/infra/persistence/postgres"
	"passwarden/internal/infra/session"
	"passwarden/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(options()...).Run()
}

func options() []fx.Option {
	return []fx.Option{
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedManager,
			startServer,
		),
	}
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewPasswordChangeLogRepository,
			postgres.NewTransactionManager,
			session.New,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewPasswordHasher,
			auth.NewPasswordPolicy,
			auth.NewJWTService,
			fx.Annotate(
				metrics.New,
				fx.As(fx.Self()),
				fx.As(new(service.MetricsRecorder)),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewPasswordService,
			impl.NewBootstrapService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewPasswordHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startServer launches every delivery once all start hooks (database, migrations, seed) have run.
func startServer(params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			for _, d := range params.Deliveries {
				go func() {
					if err := d.Serve(context.Background()); err != nil {
						params.Logger.Error("Failed to start server", slog.Any("error", err))
						_ = params.Shutdowner.Shutdown(fx.ExitCode(1))
					}
				}()
			}

			return nil
		},
	})
}
