package session

import (
	"context"
	"log/slog"
	"time"

	"passwarden/config"
	"passwarden/internal/domain/lifecycle"
	"passwarden/internal/domain/repository"
	"passwarden/internal/errors"
	"passwarden/internal/infra/persistence/postgres"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const sweepInterval = 10 * time.Minute

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	DB     *gorm.DB
}

// New returns the SessionRepository selected by session.store and registers its lifecycle hooks.
func New(params Params) (repository.SessionRepository, error) {
	var store repository.SessionRepository

	switch params.Config.Session.Store {
	case config.SessionStoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     params.Config.Redis.Addr,
			Password: params.Config.Redis.Password,
			DB:       params.Config.Redis.DB,
		})
		store = NewRedisStore(client, params.Config.Redis.KeyPrefix)

		params.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				if err := client.Ping(ctx).Err(); err != nil {
					return errors.Wrap(err, "failed to connect to redis")
				}
				params.Logger.Info("Redis session store connected", slog.String("addr", params.Config.Redis.Addr))

				return nil
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})

		return store, nil
	case config.SessionStoreDatabase, "":
		store = postgres.NewSessionRepository(params.DB)
	default:
		return nil, errors.Errorf("unsupported session store %q", params.Config.Session.Store)
	}

	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go sweepExpired(sweepCtx, params.Logger, store, sweepInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelSweep()

			return nil
		},
	})

	return store, nil
}

// sweepExpired periodically purges expired sessions from stores without native expiry.
func sweepExpired(ctx context.Context, logger *slog.Logger, store repository.SessionRepository, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := store.DeleteExpired(ctx)
			if err != nil {
				logger.WarnContext(ctx, "Failed to purge expired sessions", slog.Any("error", err))

				continue
			}
			if removed > 0 {
				logger.DebugContext(ctx, "Purged expired sessions", slog.Int64("removed", removed))
			}
		}
	}
}
