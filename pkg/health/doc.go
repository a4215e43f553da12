// Package health serves liveness and readiness endpoints.
//
//	health.Routes(r, health.Checks{
//	    "mail_credentials": mailer.Healthcheck(mailer.ProcessEnvironment),
//	    "redis":            throttle.Healthcheck(client),
//	})
//
// Readiness runs every check concurrently under a shared timeout (5s by default)
// and answers 503 if any fails. Responses are plain text unless the client asks
// for JSON through the Accept header or ?format=json.
package health
