package mailer

import "context"

// Sender defines the minimal interface that mail transports must implement.
// It accepts a fully-prepared Email and the credentials resolved for this attempt.
type Sender interface {
	// Send delivers an email message.
	// The Email must have To, From, Subject, and Text already set.
	// Authentication rejections wrap ErrAuthFailed, connection and protocol
	// faults wrap ErrTransportFailed. Any other error is unexpected.
	Send(ctx context.Context, email *Email, creds Credentials) error
}

// SenderFunc adapts an ordinary function to the Sender interface.
type SenderFunc func(ctx context.Context, email *Email, creds Credentials) error

// Send implements Sender.
func (f SenderFunc) Send(ctx context.Context, email *Email, creds Credentials) error {
	return f(ctx, email, creds)
}
