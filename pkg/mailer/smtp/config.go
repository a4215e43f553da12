package smtp

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

const (
	defaultHost    = "smtp.gmail.com"
	defaultPort    = 465
	defaultTimeout = 30 * time.Second

	implicitTLSPort = 465
)

// Security modes accepted by Config.Security.
const (
	SecurityAuto     = "auto"     // implicit TLS on port 465, STARTTLS elsewhere
	SecurityTLS      = "tls"      // implicit TLS on any port
	SecuritySTARTTLS = "starttls" // STARTTLS on any port
)

// Config holds SMTP relay configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Host    string        `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port    int           `env:"SMTP_PORT" envDefault:"465"`
	Timeout time.Duration `env:"SMTP_TIMEOUT" envDefault:"30s"`

	// Security selects how the session is encrypted. There is no plaintext mode.
	Security string `env:"SMTP_SECURITY" envDefault:"auto"`
}

// ImplicitTLS reports whether the relay is reached over TLS from the first byte.
// Otherwise the session must be upgraded with STARTTLS before authenticating.
func (c Config) ImplicitTLS() bool {
	switch strings.ToLower(c.Security) {
	case SecurityTLS:
		return true
	case SecuritySTARTTLS:
		return false
	default:
		return c.Port == implicitTLSPort
	}
}

// Validate rejects unknown security modes.
func (c Config) Validate() error {
	switch strings.ToLower(c.Security) {
	case "", SecurityAuto, SecurityTLS, SecuritySTARTTLS:
		return nil
	default:
		return fmt.Errorf("smtp: unknown security mode %q", c.Security)
	}
}

// Address returns the host:port pair to dial.
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c Config) withDefaults() Config {
	if c.Host == "" {
		c.Host = defaultHost
	}
	if c.Port <= 0 {
		c.Port = defaultPort
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.Security == "" {
		c.Security = SecurityAuto
	}
	return c
}
