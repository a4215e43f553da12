// Package server runs the HTTP listener with graceful shutdown.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tiagofholanda/portfolio-contact/pkg/logger"
)

const (
	defaultAddress           = ":8080"
	defaultShutdownTimeout   = 15 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultReadTimeout       = 15 * time.Second
	defaultIdleTimeout       = 60 * time.Second
	defaultMaxHeaderBytes    = 1 << 20
)

// Server owns an http.Server and the cleanup that follows it.
type Server struct {
	handler         http.Handler
	listener        net.Listener
	logger          *slog.Logger
	address         string
	writeTimeout    time.Duration
	shutdownTimeout time.Duration
	shutdownHooks   []func(context.Context) error
}

// Option configures a Server.
type Option func(*Server)

// WithAddress sets the listen address. Default: ":8080".
func WithAddress(addr string) Option {
	return func(s *Server) {
		if addr != "" {
			s.address = addr
		}
	}
}

// WithListener serves on an already-open listener instead of WithAddress.
func WithListener(ln net.Listener) Option {
	return func(s *Server) {
		s.listener = ln
	}
}

// WithLogger sets the lifecycle logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithShutdownTimeout bounds draining plus shutdown hooks. Default: 15s.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// WithWriteTimeout sets http.Server.WriteTimeout. It must exceed the time a
// contact submission may spend talking to the mail relay.
func WithWriteTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.writeTimeout = d
		}
	}
}

// WithShutdownHook registers cleanup run after the listener drains, in order.
func WithShutdownHook(fn func(context.Context) error) Option {
	return func(s *Server) {
		if fn != nil {
			s.shutdownHooks = append(s.shutdownHooks, fn)
		}
	}
}

// New creates a Server for handler.
func New(handler http.Handler, opts ...Option) *Server {
	s := &Server{
		handler:         handler,
		logger:          logger.NewNope(),
		address:         defaultAddress,
		writeTimeout:    time.Minute,
		shutdownTimeout: defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run serves until ctx is cancelled or the listener fails, then shuts down
// gracefully and runs the shutdown hooks. A clean shutdown returns nil.
func (s *Server) Run(ctx context.Context) error {
	ln := s.listener
	if ln == nil {
		var err error
		if ln, err = net.Listen("tcp", s.address); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
		ReadTimeout:       defaultReadTimeout,
		WriteTimeout:      s.writeTimeout,
		IdleTimeout:       defaultIdleTimeout,
		MaxHeaderBytes:    defaultMaxHeaderBytes,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("server starting", slog.String("address", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
		defer cancel()

		var errs []error
		if err := srv.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, err)
		}
		for _, hook := range s.shutdownHooks {
			if err := hook(shutdownCtx); err != nil {
				s.logger.Error("shutdown hook failed", slog.String("error", err.Error()))
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("shutdown completed with errors", slog.String("error", err.Error()))
		return err
	}

	s.logger.Info("shutdown completed")
	return nil
}
