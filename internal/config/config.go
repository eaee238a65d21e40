// Package config provides server configuration loaded from environment variables.
package config

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const logPrefix = "config:LoadConfig"

// Transport names accepted in TRANSPORTS.
const (
	TransportGateway = "gateway"
	TransportWebhook = "webhook"
	TransportComms   = "comms"
)

// Config holds interactions service configuration.
type Config struct {
	// Discord application
	DiscordToken     string `envconfig:"DISCORD_TOKEN"`
	DiscordPublicKey string `envconfig:"DISCORD_PUBLIC_KEY"`
	DiscordAppID     string `envconfig:"DISCORD_APP_ID"`
	// DiscordGuildID scopes command registration to one guild; empty registers globally.
	DiscordGuildID string `envconfig:"DISCORD_GUILD_ID"`

	// Transports to start: any of gateway, webhook, comms.
	Transports []string `envconfig:"TRANSPORTS" default:"webhook"`

	// COMMS: connect to standalone NATS at COMMSURL.
	COMMSURL  string `envconfig:"COMMS_URL" default:"nats://127.0.0.1:4222"`
	COMMSName string `envconfig:"SERVICE_NAME" default:"interactions"`
	// COMMSQueue is the queue group shared by replicas serving the interactions subject.
	COMMSQueue string `envconfig:"COMMS_QUEUE" default:"interactions"`

	// Subject overrides (empty = commsutil defaults)
	InteractionsSubject    string `envconfig:"INTERACTIONS_SUBJECT"`
	DispatchedEventSubject string `envconfig:"DISPATCHED_EVENT_SUBJECT"`
	PublishEvents          bool   `envconfig:"PUBLISH_EVENTS" default:"false"`

	// RequestTimeout bounds one dispatch; Discord wants the initial response within 3s.
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"3s"`

	// Database. Empty DatabaseURL keeps feedback in memory.
	DatabaseURL   string `envconfig:"DATABASE_URL"`
	RunMigrations bool   `envconfig:"RUN_MIGRATIONS" default:"false"`
	MigrationPath string `envconfig:"MIGRATION_PATH" default:"migrations"`

	// HTTP endpoint (HTTP_ADDR preferred, e.g. "0.0.0.0:8080")
	HTTPAddr           string        `envconfig:"HTTP_ADDR"`
	HTTPPort           int           `envconfig:"HTTP_PORT" default:"8080"`
	HealthCheckTimeout time.Duration `envconfig:"HEALTH_CHECK_TIMEOUT" default:"5s"`

	// Logging
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// EnabledTransports returns the normalized transport names, without blanks
// or duplicates, in the order given.
func (c *Config) EnabledTransports() []string {
	seen := make(map[string]bool, len(c.Transports))
	var out []string
	for _, t := range c.Transports {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// HasTransport reports whether the named transport is enabled.
func (c *Config) HasTransport(name string) bool {
	for _, t := range c.EnabledTransports() {
		if t == name {
			return true
		}
	}
	return false
}

// ValidateForServe checks required config when running the interactions server.
func (c *Config) ValidateForServe() error {
	transports := c.EnabledTransports()
	if len(transports) == 0 {
		return fmt.Errorf("%s - TRANSPORTS must name at least one transport", logPrefix)
	}
	for _, t := range transports {
		switch t {
		case TransportGateway:
			if c.DiscordToken == "" {
				return fmt.Errorf("%s - DISCORD_TOKEN is required for the gateway transport", logPrefix)
			}
		case TransportWebhook:
			if c.DiscordPublicKey == "" {
				return fmt.Errorf("%s - DISCORD_PUBLIC_KEY is required for the webhook transport", logPrefix)
			}
			if _, err := hex.DecodeString(c.DiscordPublicKey); err != nil {
				return fmt.Errorf("%s - DISCORD_PUBLIC_KEY must be hex: %w", logPrefix, err)
			}
		case TransportComms:
			if c.COMMSURL == "" {
				return fmt.Errorf("%s - COMMS_URL is required for the comms transport", logPrefix)
			}
		default:
			return fmt.Errorf("%s - unknown transport %q (want gateway, webhook or comms)", logPrefix, t)
		}
	}
	if c.PublishEvents && c.COMMSURL == "" {
		return fmt.Errorf("%s - COMMS_URL is required when PUBLISH_EVENTS is set", logPrefix)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%s - REQUEST_TIMEOUT must be positive", logPrefix)
	}
	if c.HealthCheckTimeout <= 0 {
		return fmt.Errorf("%s - HEALTH_CHECK_TIMEOUT must be positive", logPrefix)
	}
	return nil
}

// ValidateForDB checks required config when running DB-dependent commands (migrate, clear).
func (c *Config) ValidateForDB() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("%s - DATABASE_URL is required", logPrefix)
	}
	return nil
}

// ValidateForRegister checks required config for pushing application commands to Discord.
func (c *Config) ValidateForRegister() error {
	if c.DiscordToken == "" {
		return fmt.Errorf("%s - DISCORD_TOKEN is required for register", logPrefix)
	}
	if c.DiscordAppID == "" {
		return fmt.Errorf("%s - DISCORD_APP_ID is required for register", logPrefix)
	}
	return nil
}

// NeedsComms reports whether serve has to open a COMMS connection.
func (c *Config) NeedsComms() bool {
	return c.PublishEvents || c.HasTransport(TransportComms)
}
