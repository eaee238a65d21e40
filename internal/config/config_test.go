package config

import (
	"os"
	"reflect"
	"strings"
	"testing"
	"time"
)

var allEnv = []string{
	"DISCORD_TOKEN", "DISCORD_PUBLIC_KEY", "DISCORD_APP_ID", "DISCORD_GUILD_ID",
	"TRANSPORTS", "COMMS_URL", "SERVICE_NAME", "COMMS_QUEUE",
	"INTERACTIONS_SUBJECT", "DISPATCHED_EVENT_SUBJECT", "PUBLISH_EVENTS",
	"REQUEST_TIMEOUT", "DATABASE_URL", "RUN_MIGRATIONS", "MIGRATION_PATH",
	"HTTP_ADDR", "HTTP_PORT", "HEALTH_CHECK_TIMEOUT", "LOG_LEVEL",
}

// clearEnv unsets every variable the config reads; envconfig only applies a
// default to an unset variable. t.Setenv restores the originals afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range allEnv {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("config:config_test - unexpected error: %v", err)
	}

	if !reflect.DeepEqual(cfg.Transports, []string{"webhook"}) {
		t.Errorf("config:config_test - Transports = %v, want [webhook]", cfg.Transports)
	}
	if cfg.COMMSURL != "nats://127.0.0.1:4222" {
		t.Errorf("config:config_test - COMMSURL = %q, want %q", cfg.COMMSURL, "nats://127.0.0.1:4222")
	}
	if cfg.COMMSName != "interactions" {
		t.Errorf("config:config_test - COMMSName = %q, want %q", cfg.COMMSName, "interactions")
	}
	if cfg.COMMSQueue != "interactions" {
		t.Errorf("config:config_test - COMMSQueue = %q, want %q", cfg.COMMSQueue, "interactions")
	}
	if cfg.InteractionsSubject != "" || cfg.DispatchedEventSubject != "" {
		t.Errorf("config:config_test - subjects = %q/%q, want empty", cfg.InteractionsSubject, cfg.DispatchedEventSubject)
	}
	if cfg.PublishEvents {
		t.Error("config:config_test - expected PublishEvents=false by default")
	}
	if cfg.RequestTimeout != 3*time.Second {
		t.Errorf("config:config_test - RequestTimeout = %v, want 3s", cfg.RequestTimeout)
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("config:config_test - DatabaseURL = %q, want empty", cfg.DatabaseURL)
	}
	if cfg.RunMigrations {
		t.Error("config:config_test - expected RunMigrations=false by default")
	}
	if cfg.MigrationPath != "migrations" {
		t.Errorf("config:config_test - MigrationPath = %q, want %q", cfg.MigrationPath, "migrations")
	}
	if cfg.HTTPPort != 8080 {
		t.Errorf("config:config_test - HTTPPort = %d, want 8080", cfg.HTTPPort)
	}
	if cfg.HealthCheckTimeout != 5*time.Second {
		t.Errorf("config:config_test - HealthCheckTimeout = %v, want 5s", cfg.HealthCheckTimeout)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("config:config_test - LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	overrides := map[string]string{
		"DISCORD_TOKEN":            "token",
		"DISCORD_PUBLIC_KEY":       "abcd",
		"DISCORD_APP_ID":           "app-1",
		"DISCORD_GUILD_ID":         "guild-1",
		"TRANSPORTS":               "gateway,comms",
		"COMMS_URL":                "nats://custom:4222",
		"SERVICE_NAME":             "test-server",
		"COMMS_QUEUE":              "replicas",
		"INTERACTIONS_SUBJECT":     "custom.dispatch",
		"DISPATCHED_EVENT_SUBJECT": "custom.dispatched",
		"PUBLISH_EVENTS":           "true",
		"REQUEST_TIMEOUT":          "2s",
		"DATABASE_URL":             "postgres://test@localhost/test",
		"RUN_MIGRATIONS":           "true",
		"MIGRATION_PATH":           "/tmp/migrations",
		"HTTP_PORT":                "9090",
		"HEALTH_CHECK_TIMEOUT":     "10s",
		"LOG_LEVEL":                "debug",
	}
	for key, val := range overrides {
		t.Setenv(key, val)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("config:config_test - unexpected error: %v", err)
	}

	checks := []struct {
		name      string
		got, want any
	}{
		{"DiscordToken", cfg.DiscordToken, "token"},
		{"DiscordPublicKey", cfg.DiscordPublicKey, "abcd"},
		{"DiscordAppID", cfg.DiscordAppID, "app-1"},
		{"DiscordGuildID", cfg.DiscordGuildID, "guild-1"},
		{"COMMSURL", cfg.COMMSURL, "nats://custom:4222"},
		{"COMMSName", cfg.COMMSName, "test-server"},
		{"COMMSQueue", cfg.COMMSQueue, "replicas"},
		{"InteractionsSubject", cfg.InteractionsSubject, "custom.dispatch"},
		{"DispatchedEventSubject", cfg.DispatchedEventSubject, "custom.dispatched"},
		{"PublishEvents", cfg.PublishEvents, true},
		{"RequestTimeout", cfg.RequestTimeout, 2 * time.Second},
		{"DatabaseURL", cfg.DatabaseURL, "postgres://test@localhost/test"},
		{"RunMigrations", cfg.RunMigrations, true},
		{"MigrationPath", cfg.MigrationPath, "/tmp/migrations"},
		{"HTTPPort", cfg.HTTPPort, 9090},
		{"HealthCheckTimeout", cfg.HealthCheckTimeout, 10 * time.Second},
		{"LogLevel", cfg.LogLevel, "debug"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("config:config_test - %s = %v, want %v", c.name, c.got, c.want)
		}
	}
	if !reflect.DeepEqual(cfg.Transports, []string{"gateway", "comms"}) {
		t.Errorf("config:config_test - Transports = %v, want [gateway comms]", cfg.Transports)
	}
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("REQUEST_TIMEOUT", "soon")

	if _, err := LoadConfig(); err == nil {
		t.Error("config:config_test - expected error for invalid REQUEST_TIMEOUT")
	}
}

func TestEnabledTransports(t *testing.T) {
	cfg := &Config{Transports: []string{" Webhook", "", "comms", "webhook"}}

	got := cfg.EnabledTransports()
	if !reflect.DeepEqual(got, []string{"webhook", "comms"}) {
		t.Errorf("config:config_test - EnabledTransports = %v, want [webhook comms]", got)
	}
	if !cfg.HasTransport(TransportComms) || cfg.HasTransport(TransportGateway) {
		t.Errorf("config:config_test - HasTransport mismatch for %v", got)
	}
}

func valid() *Config {
	return &Config{
		DiscordToken:       "token",
		DiscordPublicKey:   "00ff",
		Transports:         []string{"gateway", "webhook", "comms"},
		COMMSURL:           "nats://127.0.0.1:4222",
		RequestTimeout:     3 * time.Second,
		HealthCheckTimeout: 5 * time.Second,
	}
}

func TestValidateForServe(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"no transports", func(c *Config) { c.Transports = []string{" "} }, "at least one transport"},
		{"unknown transport", func(c *Config) { c.Transports = []string{"carrier-pigeon"} }, "unknown transport"},
		{"gateway without token", func(c *Config) { c.DiscordToken = "" }, "DISCORD_TOKEN"},
		{"webhook without key", func(c *Config) { c.DiscordPublicKey = "" }, "DISCORD_PUBLIC_KEY is required"},
		{"webhook key not hex", func(c *Config) { c.DiscordPublicKey = "zz" }, "must be hex"},
		{"comms without url", func(c *Config) { c.Transports = []string{"comms"}; c.COMMSURL = "" }, "COMMS_URL"},
		{"events without url", func(c *Config) {
			c.Transports = []string{"webhook"}
			c.COMMSURL = ""
			c.PublishEvents = true
		}, "PUBLISH_EVENTS"},
		{"zero request timeout", func(c *Config) { c.RequestTimeout = 0 }, "REQUEST_TIMEOUT"},
		{"zero health timeout", func(c *Config) { c.HealthCheckTimeout = 0 }, "HEALTH_CHECK_TIMEOUT"},
		{"webhook only needs no token", func(c *Config) {
			c.Transports = []string{"webhook"}
			c.DiscordToken = ""
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.ValidateForServe()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("config:config_test - unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("config:config_test - error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateForDB(t *testing.T) {
	if err := (&Config{}).ValidateForDB(); err == nil {
		t.Error("config:config_test - expected error for empty DATABASE_URL")
	}
	if err := (&Config{DatabaseURL: "postgres://x"}).ValidateForDB(); err != nil {
		t.Errorf("config:config_test - unexpected error: %v", err)
	}
}

func TestValidateForRegister(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"complete", Config{DiscordToken: "t", DiscordAppID: "a"}, false},
		{"missing token", Config{DiscordAppID: "a"}, true},
		{"missing app", Config{DiscordToken: "t"}, true},
	}
	for _, tt := range tests {
		if err := tt.cfg.ValidateForRegister(); (err != nil) != tt.wantErr {
			t.Errorf("config:config_test - %s: err = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestNeedsComms(t *testing.T) {
	if (&Config{Transports: []string{"webhook"}}).NeedsComms() {
		t.Error("config:config_test - webhook alone should not need COMMS")
	}
	if !(&Config{Transports: []string{"webhook"}, PublishEvents: true}).NeedsComms() {
		t.Error("config:config_test - PUBLISH_EVENTS should need COMMS")
	}
	if !(&Config{Transports: []string{"comms"}}).NeedsComms() {
		t.Error("config:config_test - comms transport should need COMMS")
	}
}
