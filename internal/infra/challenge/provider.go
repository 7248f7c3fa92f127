// Package challenge implements one-time numeric challenge codes with an
// in-process backend and a Redis backend.
package challenge

import (
	"context"
	"log/slog"

	"credgate/config"
	"credgate/internal/domain/lifecycle"
	"credgate/internal/domain/service"
	"credgate/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the challenge store, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewChallengeStore picks the backend named by captcha.store and ties its
// background work to the application lifecycle.
func NewChallengeStore(params Params) (service.ChallengeStore, error) {
	cfg := params.Config.Captcha
	if cfg == nil {
		return nil, errors.New("captcha config must be provided")
	}

	switch cfg.Store {
	case config.CaptchaStoreMemory, "":
		return newMemoryBackend(params, cfg)
	case config.CaptchaStoreRedis:
		return newRedisBackend(params, cfg)
	default:
		return nil, errors.Errorf("unknown captcha store: %s", cfg.Store)
	}
}

func newMemoryBackend(params Params, cfg *config.CaptchaConfig) (service.ChallengeStore, error) {
	store, err := NewMemoryStore(cfg.Length, cfg.TTL, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			store.StartJanitor(cfg.SweepInterval)
			params.Logger.Info("Challenge store ready",
				slog.String("backend", config.CaptchaStoreMemory),
				slog.Duration("ttl", cfg.TTL),
				slog.Duration("sweep_interval", cfg.SweepInterval),
			)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			return store.Stop(ctx)
		},
	})

	return store, nil
}

func newRedisBackend(params Params, cfg *config.CaptchaConfig) (service.ChallengeStore, error) {
	redisCfg := params.Config.Redis
	if redisCfg == nil || redisCfg.Addr == "" {
		return nil, errors.New("redis.addr must be provided for the redis captcha store")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	store, err := NewRedisStore(client, redisCfg.KeyPrefix, cfg.Length, cfg.TTL, params.Logger)
	if err != nil {
		_ = client.Close()

		return nil, err
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}

			params.Logger.Info("Challenge store ready",
				slog.String("backend", config.CaptchaStoreRedis),
				slog.String("addr", redisCfg.Addr),
				slog.Duration("ttl", cfg.TTL),
			)

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return store, nil
}
