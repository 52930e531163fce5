// Package session provides the keyed store backing in-flight artist
// onboarding wizard sessions.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"tesotunes/config"
	"tesotunes/internal/domain/entity"
	"tesotunes/internal/domain/repository"
	"tesotunes/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const keyPrefix = "registration:session:"

// redisStore implements the repository.RegistrationStore interface on Redis.
// Sessions are stored as JSON under a prefixed key with the configured TTL,
// so abandoned wizards clean themselves up without a sweeper.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRedisStore is the constructor for redisStore.
func NewRedisStore(params Params) repository.RegistrationStore {
	cfg := params.Config.Redis

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		DB:           cfg.DB,
		Password:     cfg.Password,
		DialTimeout:  cfg.Timeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})

	ttl := entity.SessionTTL
	if params.Config.Registration != nil && params.Config.Registration.SessionTTL > 0 {
		ttl = params.Config.Registration.SessionTTL
	}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return &redisStore{
		client: client,
		ttl:    ttl,
	}
}

// Get retrieves the session for a key.
func (s *redisStore) Get(ctx context.Context, key string) (*entity.RegistrationSession, error) {
	raw, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to get registration session")
	}

	var session entity.RegistrationSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, errors.Wrap(err, "failed to decode registration session")
	}

	return &session, nil
}

// Put stores or replaces the session for a key, refreshing the TTL.
func (s *redisStore) Put(ctx context.Context, key string, session *entity.RegistrationSession) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "failed to encode registration session")
	}

	if err := s.client.Set(ctx, keyPrefix+key, raw, s.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store registration session")
	}

	return nil
}

// Delete discards the session for a key. Deleting a missing key is not an error.
func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return errors.Wrap(err, "failed to delete registration session")
	}

	return nil
}
