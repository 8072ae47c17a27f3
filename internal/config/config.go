// Package config loads the intake server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ErrInvalidConfig is wrapped by errors returned from [Config.Validate].
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings of the patient-form submit server.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env tag lookups (caarlos0/env).
//   - env:       environment variable name.
type Config struct {
	// Addr is the listen address of the HTTP server.
	// Env: INTAKE_ADDR
	Addr string `env:"ADDR" envDefault:":8080"`

	// ThankYouURL is where a valid submission is redirected.
	// Env: INTAKE_THANK_YOU_URL
	ThankYouURL string `env:"THANK_YOU_URL" envDefault:"thankyou.html"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	// Env: INTAKE_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Server holds HTTP timeouts.
	Server Server
}

// Server holds the HTTP server timeouts.
type Server struct {
	// Env: INTAKE_READ_TIMEOUT
	ReadTimeout time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	// Env: INTAKE_WRITE_TIMEOUT
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	// Env: INTAKE_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads the configuration from INTAKE_* environment variables and
// validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "INTAKE_"}); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the loaded values are usable.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidConfig)
	}
	if c.ThankYouURL == "" {
		return fmt.Errorf("%w: empty thank-you URL", ErrInvalidConfig)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("%w: server timeouts must be positive", ErrInvalidConfig)
	}
	return nil
}
