// Command contact serves the portfolio contact form relay.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/tiagofholanda/portfolio-contact/internal/config"
	"github.com/tiagofholanda/portfolio-contact/internal/server"
	"github.com/tiagofholanda/portfolio-contact/middlewares"
	"github.com/tiagofholanda/portfolio-contact/pkg/contact"
	"github.com/tiagofholanda/portfolio-contact/pkg/health"
	"github.com/tiagofholanda/portfolio-contact/pkg/logger"
	"github.com/tiagofholanda/portfolio-contact/pkg/mailer"
	"github.com/tiagofholanda/portfolio-contact/pkg/mailer/smtp"
	"github.com/tiagofholanda/portfolio-contact/pkg/throttle"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Log, middlewares.RequestIDExtractor())

	opts := []server.Option{
		server.WithAddress(cfg.Address),
		server.WithLogger(log),
		server.WithShutdownTimeout(cfg.ShutdownTimeout),
		server.WithWriteTimeout(cfg.RequestTimeout + 5*time.Second),
		server.WithShutdownHook(func(context.Context) error {
			sentry.Flush(2 * time.Second)
			return nil
		}),
	}

	checks := health.Checks{
		"mail_credentials": mailer.Healthcheck(mailer.ProcessEnvironment),
	}

	var limiter throttle.Limiter
	switch {
	case cfg.Cooldown == 0:
		log.Info("submission cooldown disabled")
	case cfg.RedisURL != "":
		client, err := throttle.OpenRedis(ctx, cfg.RedisURL, 3, time.Second)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		limiter = throttle.NewRedis(client, throttle.WithCooldown(cfg.Cooldown))
		checks["redis"] = throttle.Healthcheck(client)
		opts = append(opts, server.WithShutdownHook(func(context.Context) error {
			return client.Close()
		}))
	default:
		limiter = throttle.NewMemory(throttle.WithCooldown(cfg.Cooldown))
		opts = append(opts, server.WithShutdownHook(func(context.Context) error {
			return limiter.Close()
		}))
	}

	service := contact.NewService(
		smtp.New(cfg.SMTP),
		contact.WithLogger(log),
		contact.WithTransitionHook(func(from, to contact.State) {
			log.Debug("submission state changed",
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		}),
	)

	handlerOpts := []contact.HandlerOption{contact.WithHandlerLogger(log)}
	if limiter != nil {
		handlerOpts = append(handlerOpts, contact.WithLimiter(limiter))
	}

	router := newRouter(cfg, log, contact.NewHandler(service, handlerOpts...), checks)

	log.Info("contact relay configured",
		slog.String("smtp_address", cfg.SMTP.Address()),
		slog.Bool("smtp_implicit_tls", cfg.SMTP.ImplicitTLS()),
		slog.Duration("cooldown", cfg.Cooldown),
	)

	return server.New(router, opts...).Run(ctx)
}
