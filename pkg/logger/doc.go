// Package logger builds the service's slog logger.
//
// Records are written to stdout as JSON (or text) and, when SENTRY_DSN is set,
// mirrored to Sentry: errors become issues and warnings are kept as logs.
// Request-scoped values are attached through ContextExtractor functions that run
// on every call:
//
//	log := logger.New(cfg.Log, middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "contact sent", slog.String("submission_id", id))
//
// Any attribute whose key contains password, secret, senha or token is replaced
// with [REDACTED] before it reaches a destination, including nested groups.
//
// NewNope returns a logger that discards everything and is the default for
// components constructed without one.
package logger
