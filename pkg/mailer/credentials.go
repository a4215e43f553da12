package mailer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Environment keys holding the mail credentials.
const (
	EnvDestination = "EMAIL_DESTINO"
	EnvIdentity    = "EMAIL_USUARIO"
	EnvSecret      = "EMAIL_SENHA"
)

const redacted = "[REDACTED]"

// Credentials holds the destination mailbox and the relay account used to send.
// All three values are required together; a partial set is treated as missing.
type Credentials struct {
	Destination string `env:"EMAIL_DESTINO"`
	Identity    string `env:"EMAIL_USUARIO"`
	Secret      string `env:"EMAIL_SENHA"`
}

// ResolveCredentials reads the mail credentials from the given environment map.
// Returns ErrMissingConfig, joined with the list of absent keys, unless all
// three values are present and non-empty.
func ResolveCredentials(environ map[string]string) (Credentials, error) {
	if environ == nil {
		environ = map[string]string{}
	}

	var creds Credentials
	if err := env.ParseWithOptions(&creds, env.Options{Environment: environ}); err != nil {
		return Credentials{}, errors.Join(ErrMissingConfig, err)
	}

	if missing := creds.missing(); len(missing) > 0 {
		return Credentials{}, errors.Join(
			ErrMissingConfig,
			fmt.Errorf("missing %s", strings.Join(missing, ", ")),
		)
	}

	return creds, nil
}

// ProcessEnvironment returns a snapshot of the current process environment.
func ProcessEnvironment() map[string]string {
	return env.ToMap(os.Environ())
}

// Healthcheck reports ErrMissingConfig while the credentials in environ() are incomplete.
func Healthcheck(environ func() map[string]string) func(context.Context) error {
	return func(context.Context) error {
		_, err := ResolveCredentials(environ())
		return err
	}
}

func (c Credentials) missing() []string {
	var keys []string
	if strings.TrimSpace(c.Destination) == "" {
		keys = append(keys, EnvDestination)
	}
	if strings.TrimSpace(c.Identity) == "" {
		keys = append(keys, EnvIdentity)
	}
	if c.Secret == "" {
		keys = append(keys, EnvSecret)
	}
	return keys
}

// String implements fmt.Stringer without exposing the secret.
func (c Credentials) String() string {
	secret := ""
	if c.Secret != "" {
		secret = redacted
	}
	return fmt.Sprintf("{destination:%s identity:%s secret:%s}", c.Destination, c.Identity, secret)
}

// LogValue implements slog.LogValuer without exposing the secret.
func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("destination", c.Destination),
		slog.String("identity", c.Identity),
		slog.String("secret", redacted),
	)
}
