package throttle

import (
	"context"
	"errors"
	"time"
)

// DefaultCooldown is the window applied when no cooldown is configured.
const DefaultCooldown = time.Minute

// Sentinel errors for throttle operations.
var (
	// ErrClosed is returned when an operation is attempted on a closed limiter.
	ErrClosed = errors.New("throttle: closed")

	// ErrEmptyConnectionURL is returned by OpenRedis when no URL is given.
	ErrEmptyConnectionURL = errors.New("throttle: empty redis connection URL")

	// ErrConnectionFailed is returned by OpenRedis when Redis cannot be reached.
	ErrConnectionFailed = errors.New("throttle: failed to establish redis connection")

	// ErrHealthcheckFailed is returned by Healthcheck when Redis does not answer.
	ErrHealthcheckFailed = errors.New("throttle: redis healthcheck failed")
)

// Limiter tracks which clients are cooling down after a submission.
type Limiter interface {
	// Reserve atomically starts the cooldown window for key. It reports false
	// when key is already cooling down.
	Reserve(ctx context.Context, key string) (bool, error)

	// Release ends the window for key, used when the reserved submission failed.
	Release(ctx context.Context, key string) error

	// Close releases resources (stops background goroutines, etc.).
	Close() error
}

// Option configures a limiter.
type Option func(*options)

type options struct {
	prefix          string
	cooldown        time.Duration
	cleanupInterval time.Duration
}

func defaultOptions() *options {
	return &options{
		prefix:          "contact:cooldown",
		cooldown:        DefaultCooldown,
		cleanupInterval: time.Minute,
	}
}

// WithCooldown sets how long a client must wait after a successful submission.
// Default: 1 minute.
func WithCooldown(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.cooldown = d
		}
	}
}

// WithCleanupInterval sets how often the in-memory limiter drops expired keys.
// Default: 1 minute.
func WithCleanupInterval(d time.Duration) Option {
	return func(o *options) {
		o.cleanupInterval = d
	}
}

// WithPrefix sets the Redis key prefix.
// Default: "contact:cooldown".
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}
