package mailer

import "errors"

// Email represents a fully-prepared plain-text email message ready for sending.
type Email struct {
	Headers map[string]string // Custom headers
	Subject string            // Email subject
	Text    string            // Plain text body
	From    string            // Envelope and header sender
	ReplyTo string            // Reply-to address
	To      []string          // Recipients (at least one required)
}

// Validate reports whether the email carries everything a transport needs.
func (e *Email) Validate() error {
	if e == nil || len(e.To) == 0 {
		return ErrNoRecipient
	}
	if e.From == "" {
		return ErrNoSender
	}
	if e.Subject == "" {
		return ErrNoSubject
	}
	if e.Text == "" {
		return ErrNoContent
	}
	return nil
}

// IsAuthFailure reports whether err was caused by the relay rejecting credentials.
func IsAuthFailure(err error) bool {
	return errors.Is(err, ErrAuthFailed)
}

// IsTransportFailure reports whether err was caused by the connection or the mail protocol.
func IsTransportFailure(err error) bool {
	return errors.Is(err, ErrTransportFailed)
}
