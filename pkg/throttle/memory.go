package throttle

import (
	"context"
	"sync"
	"time"
)

// Memory is an in-process Limiter. Cooldowns are lost on restart and are not
// shared between replicas; use Redis when either matters.
type Memory struct {
	until  map[string]time.Time
	opts   *options
	now    func() time.Time
	done   chan struct{}
	mu     sync.Mutex
	closed bool
}

// NewMemory creates an in-memory limiter.
//
// Example:
//
//	l := throttle.NewMemory(throttle.WithCooldown(2 * time.Minute))
//	defer l.Close()
func NewMemory(opts ...Option) *Memory {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	m := &Memory{
		until: make(map[string]time.Time),
		opts:  o,
		now:   time.Now,
		done:  make(chan struct{}),
	}

	if o.cleanupInterval > 0 {
		go m.janitor()
	}

	return m
}

// Reserve starts a cooldown window for key unless one is already running.
// The check and the write happen under one lock, so concurrent callers for the
// same key get exactly one true.
func (m *Memory) Reserve(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return false, ErrClosed
	}

	now := m.now()
	if until, ok := m.until[key]; ok && now.Before(until) {
		return false, nil
	}

	m.until[key] = now.Add(m.opts.cooldown)
	return true, nil
}

// Release drops the cooldown window for key.
func (m *Memory) Release(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	delete(m.until, key)
	return nil
}

// Close stops the background janitor goroutine. Close is idempotent.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}

	m.closed = true
	close(m.done)

	return nil
}

// janitor periodically removes expired keys.
func (m *Memory) janitor() {
	ticker := time.NewTicker(m.opts.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.deleteExpired()
		}
	}
}

func (m *Memory) deleteExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for key, until := range m.until {
		if !now.Before(until) {
			delete(m.until, key)
		}
	}
}

var _ Limiter = (*Memory)(nil)
