package smtp

import (
	"context"
	"crypto/tls"
	"io"
	"net"
	netsmtp "net/smtp"
	"time"
)

// Client is the subset of *net/smtp.Client used by Sender.
type Client interface {
	Auth(a netsmtp.Auth) error
	Mail(from string) error
	Rcpt(to string) error
	Data() (io.WriteCloser, error)
	Quit() error
	Close() error
}

// DialFunc opens an encrypted session with the relay described by cfg.
// A returned Client must already be protected by TLS.
type DialFunc func(ctx context.Context, cfg Config) (Client, error)

// relayDialer returns the default DialFunc. Port 465 is dialed with implicit TLS;
// any other port is upgraded with STARTTLS, which the relay must offer.
func relayDialer(base *tls.Config) DialFunc {
	return func(ctx context.Context, cfg Config) (Client, error) {
		tlsConfig := &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12}
		if base != nil {
			tlsConfig = base.Clone()
			if tlsConfig.ServerName == "" {
				tlsConfig.ServerName = cfg.Host
			}
		}

		netDialer := &net.Dialer{Timeout: cfg.Timeout}

		var (
			conn net.Conn
			err  error
		)
		if cfg.ImplicitTLS() {
			conn, err = (&tls.Dialer{NetDialer: netDialer, Config: tlsConfig}).DialContext(ctx, "tcp", cfg.Address())
		} else {
			conn, err = netDialer.DialContext(ctx, "tcp", cfg.Address())
		}
		if err != nil {
			return nil, err
		}

		// net/smtp has no context support; bound the session through the conn deadline.
		if deadline, ok := ctx.Deadline(); ok {
			_ = conn.SetDeadline(deadline)
		}
		context.AfterFunc(ctx, func() {
			_ = conn.SetDeadline(time.Now())
		})

		client, err := netsmtp.NewClient(conn, cfg.Host)
		if err != nil {
			_ = conn.Close()
			return nil, err
		}

		if cfg.ImplicitTLS() {
			return client, nil
		}

		if ok, _ := client.Extension("STARTTLS"); !ok {
			_ = client.Close()
			return nil, ErrStartTLSUnsupported
		}
		if err := client.StartTLS(tlsConfig); err != nil {
			_ = client.Close()
			return nil, err
		}

		return client, nil
	}
}
