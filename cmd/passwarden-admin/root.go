package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"passwarden/config"
	"passwarden/internal/errors"
	"passwarden/internal/infra/auth"
	logs "passwarden/internal/infra/log"
	"passwarden/internal/infra/persistence/postgres"
	"passwarden/internal/usecase"
	"passwarden/internal/usecase/impl"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gorm.io/gorm"
)

const defaultTimeout = 30 * time.Second

// configLoader resolves the service configuration, overlaying explicitly set flags.
type configLoader func(fs *pflag.FlagSet) (*config.Config, error)

// adminEnv is everything a subcommand needs, opened once per invocation.
type adminEnv struct {
	cfg       *config.Config
	logger    *slog.Logger
	db        *gorm.DB
	bootstrap usecase.BootstrapUsecase
}

func (env *adminEnv) Close() error {
	sqlDB, err := env.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}

	return sqlDB.Close()
}

// runFunc is the body of a subcommand once the environment is open.
type runFunc func(ctx context.Context, cmd *cobra.Command, env *adminEnv) error

// runner opens the environment, bounds the context by --timeout and closes everything afterwards.
type runner func(run runFunc) func(cmd *cobra.Command, args []string) error

// NewRootCmd creates the root command of the operator CLI.
func NewRootCmd(load configLoader) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "passwarden-admin",
		Short: "Operator tasks for passwarden",
		Long: `passwarden-admin talks to the passwarden database directly.
It provisions password managers out of band, which is the only way to create the first one.`,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.DurationVar(&timeout, "timeout", defaultTimeout, "timeout for database operations")
	flags.String("database.driver", "", "database driver (postgres or sqlite)")
	flags.Bool("database.autoMigrate", false, "migrate the schema before running the command")
	flags.String("sqlite.path", "", "sqlite database file")

	run := func(body runFunc) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			env, err := openEnv(load, flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := env.Close(); closeErr != nil {
					env.logger.Warn("Failed to close database", slog.Any("error", closeErr))
				}
			}()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			return body(ctx, cmd, env)
		}
	}

	cmd.AddCommand(newCreateManagerCmd(run))
	cmd.AddCommand(newGrantManagerCmd(run))
	cmd.AddCommand(newMigrateCmd(run))

	return cmd
}

func openEnv(load configLoader, fs *pflag.FlagSet, logOutput io.Writer) (*adminEnv, error) {
	cfg, err := load(fs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg, Output: logOutput})
	if err != nil {
		return nil, err
	}

	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return nil, err
	}

	env := &adminEnv{
		cfg:    cfg,
		logger: logger,
		db:     db,
		bootstrap: impl.NewBootstrapService(impl.BootstrapServiceParams{
			TxManager:      postgres.NewTransactionManager(db),
			Hasher:         auth.NewPasswordHasher(cfg),
			PasswordPolicy: auth.NewPasswordPolicy(cfg),
			Logger:         logger,
		}),
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.AutoMigrate(db); err != nil {
			_ = env.Close()

			return nil, err
		}
	}

	return env, nil
}
