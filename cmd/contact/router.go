package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tiagofholanda/portfolio-contact/internal/config"
	"github.com/tiagofholanda/portfolio-contact/middlewares"
	"github.com/tiagofholanda/portfolio-contact/pkg/contact"
	"github.com/tiagofholanda/portfolio-contact/pkg/health"
)

func newRouter(cfg config.Config, log *slog.Logger, h *contact.Handler, checks health.Checks) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestID())
	r.Use(middlewares.Recover(log))
	r.Use(middlewares.CORS(middlewares.WithAllowOrigins(cfg.CORSOrigins...)))

	health.Routes(r, checks, health.WithLogger(log))

	r.Group(func(r chi.Router) {
		r.Use(middlewares.Timeout(cfg.RequestTimeout))
		h.Routes(r)
	})

	return r
}
