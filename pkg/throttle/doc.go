// Package throttle limits how often a single client can send a contact message.
//
// A submission reserves the client's key (usually its IP address) before it is
// sent; until the cooldown window expires, further Reserve calls report false.
// Reservation is atomic, so concurrent requests from one client cannot all pass.
// Failed or rejected submissions Release the key, so a user can fix a typo and
// resubmit.
//
// Two backends are provided:
//
//   - Memory: process-local map with a janitor goroutine
//   - Redis: TTL keys shared between replicas
//
// Usage:
//
//	client, err := throttle.OpenRedis(ctx, os.Getenv("REDIS_URL"), 3, time.Second)
//	if err != nil {
//		return err
//	}
//	limiter := throttle.NewRedis(client, throttle.WithCooldown(time.Minute))
//
//	ok, err := limiter.Reserve(ctx, clientIP)
//	// ... send ...
//	if failed {
//		_ = limiter.Release(ctx, clientIP)
//	}
package throttle
