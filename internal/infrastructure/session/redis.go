package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/cakehouse/storefront-client/internal/core/domain"
)

const (
	sessionKey     = "storefront:session"
	defaultTimeout = 5 * time.Second
)

// RedisConfig captures the settings for establishing a Redis connection.
type RedisConfig struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect initialises a Redis client and validates connectivity with a ping.
// A default timeout is applied when none is provided.
func Connect(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// RedisStore keeps the session in a Redis hash. Useful when several kiosk
// terminals must share one logged-in state. The SessionStore contract is
// synchronous, so operations run against a short internal timeout and a
// failed read degrades to the absent session.
type RedisStore struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewRedisStore(client *redis.Client, log zerolog.Logger) *RedisStore {
	return &RedisStore{client: client, log: log}
}

func (r *RedisStore) Set(token string, role domain.Role) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if err := r.client.HSet(ctx, sessionKey, "token", token, "role", string(role)).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (r *RedisStore) Get() domain.Session {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	fields, err := r.client.HGetAll(ctx, sessionKey).Result()
	if err != nil {
		r.log.Warn().Err(err).Msg("session read failed, treating as absent")
		return domain.Session{}
	}
	return domain.Session{
		Token: fields["token"],
		Role:  domain.Role(fields["role"]),
	}
}

func (r *RedisStore) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if err := r.client.Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
