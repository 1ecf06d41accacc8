// Package config loads service configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the governd configuration.
type Config struct {
	DBPath       string `env:"GOVERNANCE_DB_PATH"       envDefault:"governance.db"`
	GRPCAddr     string `env:"GOVERNANCE_GRPC_ADDR"     envDefault:"localhost:50061"`
	MetricsAddr  string `env:"GOVERNANCE_METRICS_ADDR"  envDefault:"localhost:9464"`
	NATSURL      string `env:"GOVERNANCE_NATS_URL"`
	NATSSubject  string `env:"GOVERNANCE_NATS_SUBJECT"  envDefault:"lifeos.governance.verdict"`
	AuditEnabled bool   `env:"GOVERNANCE_AUDIT_ENABLED" envDefault:"true"`
	OTELEndpoint string `env:"GOVERNANCE_OTEL_ENDPOINT"`
	ServiceName  string `env:"GOVERNANCE_SERVICE_NAME"  envDefault:"governd"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the service configuration with defaults applied.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// EventsEnabled reports whether a NATS URL is configured.
func (c Config) EventsEnabled() bool {
	return c.NATSURL != ""
}

// TracingEnabled reports whether an OTLP endpoint is configured.
func (c Config) TracingEnabled() bool {
	return c.OTELEndpoint != ""
}
