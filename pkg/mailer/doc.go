// Package mailer defines the plain-text email envelope, the transport interface,
// and the credentials used to relay contact messages.
//
// The package separates what is sent (Email) from how it is delivered (Sender),
// so the SMTP transport in the smtp subpackage can be swapped for a test double.
//
// # Credentials
//
// Credentials are read from an explicit environment map on every send attempt:
//
//	creds, err := mailer.ResolveCredentials(mailer.ProcessEnvironment())
//	if errors.Is(err, mailer.ErrMissingConfig) {
//		// operator error: EMAIL_DESTINO, EMAIL_USUARIO and EMAIL_SENHA must all be set
//	}
//
// A partially configured set is reported exactly like an unconfigured one.
// Credentials never print their secret, neither through fmt nor through slog.
//
// # Sending
//
//	sender := smtp.New(smtp.Config{Host: "smtp.gmail.com", Port: 465})
//
//	err := sender.Send(ctx, &mailer.Email{
//		To:      []string{creds.Destination},
//		From:    creds.Identity,
//		Subject: "Hello",
//		Text:    "Plain text body",
//	}, creds)
//
// # Errors
//
// Transports classify failures with two sentinel errors:
//
//   - ErrAuthFailed: the relay rejected the account credentials
//   - ErrTransportFailed: connection, TLS, timeout, or protocol fault
//
// Any other error returned by a Sender is unexpected and should be reported as such.
// Envelope validation returns ErrNoRecipient, ErrNoSender, ErrNoSubject or ErrNoContent.
package mailer
