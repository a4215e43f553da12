package throttle

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Limiter backed by Redis keys with a TTL, shared by all replicas.
type Redis struct {
	client redis.UniversalClient
	opts   *options
}

// NewRedis creates a Redis-backed limiter.
// The client lifecycle stays with the caller; Close does not close it.
func NewRedis(client redis.UniversalClient, opts ...Option) *Redis {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Redis{client: client, opts: o}
}

// Reserve creates the cooldown entry with SET NX, so only one concurrent caller
// per key wins. The entry expires after the configured window.
func (r *Redis) Reserve(ctx context.Context, key string) (bool, error) {
	return r.client.SetNX(ctx, r.prefixedKey(key), 1, r.opts.cooldown).Result()
}

// Release deletes the cooldown entry for key.
func (r *Redis) Release(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.prefixedKey(key)).Err()
}

// Close is a no-op. The Redis client is closed by its owner.
func (r *Redis) Close() error {
	return nil
}

func (r *Redis) prefixedKey(key string) string {
	if r.opts.prefix == "" {
		return key
	}
	return r.opts.prefix + ":" + key
}

// OpenRedis connects to Redis, retrying with a linear backoff.
// Supports both redis:// and rediss:// (TLS) URL schemes.
func OpenRedis(ctx context.Context, url string, attempts int, interval time.Duration) (redis.UniversalClient, error) {
	if url == "" {
		return nil, ErrEmptyConnectionURL
	}
	if !strings.HasPrefix(url, "redis://") && !strings.HasPrefix(url, "rediss://") {
		return nil, errors.Join(ErrConnectionFailed, errors.New("unsupported URL scheme"))
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Join(ErrConnectionFailed, err)
	}

	attempts = max(attempts, 1)
	var lastErr error
	for i := range attempts {
		client := redis.NewClient(opts)
		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			return client, nil
		}
		_ = client.Close()

		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrConnectionFailed, ctx.Err())
		case <-time.After(time.Duration(i+1) * interval):
		}
	}

	return nil, errors.Join(ErrConnectionFailed, lastErr)
}

// Healthcheck returns a closure that validates Redis connectivity for health endpoints.
func Healthcheck(client redis.UniversalClient) func(context.Context) error {
	return func(ctx context.Context) error {
		if client == nil {
			return ErrHealthcheckFailed
		}
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}

var _ Limiter = (*Redis)(nil)
