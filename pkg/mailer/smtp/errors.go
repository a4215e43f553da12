package smtp

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/textproto"

	"github.com/tiagofholanda/portfolio-contact/pkg/mailer"
)

// ErrStartTLSUnsupported is returned when a relay on a non-TLS port does not offer STARTTLS.
// Credentials are never sent over an unencrypted session.
var ErrStartTLSUnsupported = errors.New("smtp: relay does not support STARTTLS")

// authError classifies a failure of the AUTH exchange.
// A permanent (5xx) reply rejects the credentials; a temporary (4xx) reply such
// as 454 is a relay-side fault and is classified as transport.
func authError(err error) error {
	var reply *textproto.Error
	if errors.As(err, &reply) && reply.Code >= 500 {
		return errors.Join(mailer.ErrAuthFailed, fmt.Errorf("smtp auth: %w", err))
	}
	return classify("auth", err)
}

// classify wraps err with ErrTransportFailed when it is a connection or protocol fault.
// Other errors are returned with the step name only, so callers treat them as unexpected.
func classify(step string, err error) error {
	wrapped := fmt.Errorf("smtp %s: %w", step, err)
	if isTransportFault(err) {
		return errors.Join(mailer.ErrTransportFailed, wrapped)
	}
	return wrapped
}

func isTransportFault(err error) bool {
	if errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, net.ErrClosed) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, ErrStartTLSUnsupported) {
		return true
	}

	var (
		netErr    net.Error
		reply     *textproto.Error
		protoErr  textproto.ProtocolError
		recordErr tls.RecordHeaderError
		certErr   *tls.CertificateVerificationError
	)
	return errors.As(err, &netErr) ||
		errors.As(err, &reply) ||
		errors.As(err, &protoErr) ||
		errors.As(err, &recordErr) ||
		errors.As(err, &certErr)
}
