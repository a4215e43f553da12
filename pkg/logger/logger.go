package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Output formats accepted by Config.Format.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Config controls the process logger.
type Config struct {
	Level  slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	Format string     `env:"LOG_FORMAT" envDefault:"json"`
	Sentry SentryConfig
}

// New creates a logger writing to stdout, mirrored to Sentry when a DSN is configured.
// Attributes whose keys look like credentials are redacted at every destination.
func New(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	return newLogger(os.Stdout, cfg, extractors...)
}

func newLogger(w io.Writer, cfg Config, extractors ...ContextExtractor) *slog.Logger {
	handler := newStreamHandler(w, cfg)

	if sentryHandler := newSentryHandler(cfg.Sentry, handler); sentryHandler != nil {
		handler = newMultiHandler(handler, sentryHandler)
	}

	return slog.New(NewLogHandlerDecorator(newRedactHandler(handler), extractors...))
}

func newStreamHandler(w io.Writer, cfg Config) slog.Handler {
	opts := &slog.HandlerOptions{Level: cfg.Level}
	if strings.EqualFold(cfg.Format, FormatText) {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}
