// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/tiagofholanda/portfolio-contact/pkg/logger"
	"github.com/tiagofholanda/portfolio-contact/pkg/mailer/smtp"
)

// ErrInvalidConfig wraps configuration values that parse but cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the service configuration. Mail credentials are not part of it:
// they are read from the environment on every send.
type Config struct {
	Address         string        `env:"ADDRESS" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"45s"`
	CORSOrigins     []string      `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`

	// Cooldown is the per-client window after a successful submission. Zero disables it.
	Cooldown time.Duration `env:"CONTACT_COOLDOWN" envDefault:"60s"`
	RedisURL string        `env:"REDIS_URL"`

	Log  logger.Config
	SMTP smtp.Config
}

// Load reads the given dotenv files (".env" when none are named) into the process
// environment without overriding variables already set, then parses Config.
// Missing dotenv files are ignored.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load dotenv: %w", err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the service cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Address == "" {
		errs = append(errs, errors.New("ADDRESS is empty"))
	}
	if c.Cooldown < 0 {
		errs = append(errs, errors.New("CONTACT_COOLDOWN is negative"))
	}
	if c.SMTP.Port <= 0 || c.SMTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("SMTP_PORT %d out of range", c.SMTP.Port))
	}
	if c.SMTP.Host == "" {
		errs = append(errs, errors.New("SMTP_HOST is empty"))
	}
	if err := c.SMTP.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return errors.Join(ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}
