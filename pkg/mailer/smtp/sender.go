// Package smtp implements mailer.Sender over an authenticated, encrypted SMTP relay.
package smtp

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	netsmtp "net/smtp"
	"slices"

	mail "gopkg.in/mail.v2"

	"github.com/tiagofholanda/portfolio-contact/pkg/mailer"
)

// Sender implements mailer.Sender using an SMTP relay.
// Each Send opens its own session and closes it before returning.
type Sender struct {
	dial      DialFunc
	tlsConfig *tls.Config
	config    Config
}

// Option configures a Sender.
type Option func(*Sender)

// WithDialer replaces the function used to open relay sessions.
func WithDialer(dial DialFunc) Option {
	return func(s *Sender) {
		s.dial = dial
	}
}

// WithTLSConfig sets the TLS configuration used for implicit TLS and STARTTLS.
func WithTLSConfig(cfg *tls.Config) Option {
	return func(s *Sender) {
		s.tlsConfig = cfg
	}
}

// New creates a new SMTP sender.
func New(cfg Config, opts ...Option) *Sender {
	s := &Sender{config: cfg.withDefaults()}
	for _, opt := range opts {
		opt(s)
	}
	if s.dial == nil {
		s.dial = relayDialer(s.tlsConfig)
	}
	return s
}

// Send implements mailer.Sender.
// The session is closed exactly once on every path after a successful dial.
func (s *Sender) Send(ctx context.Context, email *mailer.Email, creds mailer.Credentials) error {
	if err := email.Validate(); err != nil {
		return err
	}

	msg, err := buildMessage(email)
	if err != nil {
		return fmt.Errorf("smtp: failed to build message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	client, err := s.dial(ctx, s.config)
	if err != nil {
		return classify("dial", err)
	}
	defer func() { _ = client.Close() }()

	if err := client.Auth(netsmtp.PlainAuth("", creds.Identity, creds.Secret, s.config.Host)); err != nil {
		return authError(err)
	}

	if err := client.Mail(email.From); err != nil {
		return classify("mail from", err)
	}
	for _, to := range email.To {
		if err := client.Rcpt(to); err != nil {
			return classify("rcpt to", err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return classify("data", err)
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return classify("data", err)
	}
	if err := w.Close(); err != nil {
		return classify("data", err)
	}

	// The relay accepted the message once DATA closed; a failed QUIT does not undo that.
	_ = client.Quit()

	return nil
}

// buildMessage renders the email as an RFC 5322 message with a UTF-8 plain text body.
func buildMessage(email *mailer.Email) ([]byte, error) {
	m := mail.NewMessage()
	m.SetHeader("From", email.From)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	if email.ReplyTo != "" {
		m.SetHeader("Reply-To", email.ReplyTo)
	}

	keys := make([]string, 0, len(email.Headers))
	for k := range email.Headers {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		m.SetHeader(k, email.Headers[k])
	}

	m.SetBody("text/plain", email.Text)

	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
