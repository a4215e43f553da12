// Package middlewares provides net/http middleware for the contact service.
//
// Recommended order on a chi router:
//
//	r.Use(middleware.RealIP)
//	r.Use(middlewares.RequestID())
//	r.Use(middlewares.Recover(log))
//	r.Use(middlewares.CORS(middlewares.WithAllowOrigins(cfg.CORSOrigins...)))
//	r.Use(middlewares.Timeout(cfg.RequestTimeout))
//
// RequestID stores the ID in the request context; pass RequestIDExtractor to
// logger.New so every record written with that context carries request_id.
package middlewares
