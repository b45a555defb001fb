package main

import (
	"context"
	"log/slog"

	"passwarden/config"
	"passwarden/internal/domain/lifecycle"
	"passwarden/internal/errors"
	"passwarden/internal/usecase"

	"go.uber.org/fx"
)

type seedManagerParams struct {
	fx.In
	fx.Lifecycle

	Config    *config.Config
	Bootstrap usecase.BootstrapUsecase
	Logger    *slog.Logger
}

// seedManager provisions bootstrap.managerUsername on start when both bootstrap fields are set.
// An existing account is promoted and keeps its password.
func seedManager(params seedManagerParams) {
	seed := params.Config.Bootstrap
	if seed == nil || seed.ManagerUsername == "" || seed.ManagerPassword == "" {
		return
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			output, err := params.Bootstrap.EnsureManager(ctx, seed.ManagerUsername, seed.ManagerPassword)
			if err != nil {
				return errors.Wrap(err, "failed to seed password manager")
			}

			params.Logger.Info("Bootstrap password manager ready",
				slog.String("username", output.User.Username),
				slog.Bool("created", output.Created),
			)

			return nil
		},
	})
}
