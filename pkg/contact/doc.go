// Package contact relays portfolio contact-form submissions by email.
//
// A submission carries a name, the sender's email address, and a message.
// Service.Submit runs it through a fixed pipeline:
//
//	Idle -> Validating -> Sending -> Resolved
//
//   - Empty fields resolve immediately as KindMissingFields; the validator is not called.
//   - An address rejected by the EmailValidator resolves as KindInvalidEmail.
//   - Mail credentials are read from the environment on every attempt; a partial
//     set resolves as KindMissingConfig.
//   - The composed message is handed to a mailer.Sender. Authentication rejections,
//     transport faults, and anything unexpected resolve as KindAuthFailed,
//     KindTransportFailed, and KindUnknown.
//
// Nothing is retried and nothing is stored. Every failure is an Outcome value;
// Submit does not return errors or let transport panics escape.
//
// # Usage
//
//	svc := contact.NewService(smtp.New(cfg.SMTP), contact.WithLogger(log))
//
//	out := svc.Submit(ctx, contact.Request{
//		Name:    "Ana",
//		Email:   "ana@example.com",
//		Message: "Olá!",
//	})
//	if !out.OK() {
//		return out.Err()
//	}
//
// # HTTP
//
// Handler exposes the pipeline as POST /contact for JSON or form bodies and maps
// each Kind to an HTTP status (see StatusCode). With WithLimiter, a client that
// just sent a message is refused with 429 until its cooldown expires.
package contact
