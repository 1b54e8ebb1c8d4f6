// Package config provides environment-variable-first configuration loading
// with optional YAML file fallback for the mailer.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/shineum/study-mailer/internal/address"
	"github.com/shineum/study-mailer/internal/sender"
)

// Config holds the complete application configuration.
type Config struct {
	Sender   SenderConfig  `yaml:"sender"`
	Provider string        `yaml:"provider"`
	Logging  LoggingConfig `yaml:"logging"`
}

// SenderConfig holds the sender address and the accepted address suffixes.
type SenderConfig struct {
	Address         string   `yaml:"address"`
	AllowedSuffixes []string `yaml:"allowed_suffixes"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// knownProviders lists the provider names accepted by Validate.
var knownProviders = map[string]bool{
	"stdout": true,
}

// Load loads configuration from environment variables with sensible defaults.
// Environment variables always take precedence.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.applyEnvVars()
	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file as the base layer,
// then overrides with environment variables. Returns an error if the
// specified file path does not exist.
func LoadFromFile(path string) (*Config, error) {
	cfg := &Config{}
	cfg.applyDefaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Environment variables always override YAML values
	cfg.applyEnvVars()

	return cfg, nil
}

// Validate checks that the configuration can be used to build a sender.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Sender.Address) == "" {
		return errors.New("sender address is required")
	}
	if len(splitList(strings.Join(c.Sender.AllowedSuffixes, ","))) == 0 {
		return errors.New("at least one allowed suffix is required")
	}
	if !knownProviders[c.Provider] {
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
	return nil
}

// SenderOptions returns the sender options described by the configuration.
func (c *Config) SenderOptions() []sender.Option {
	return []sender.Option{
		sender.WithAddress(c.Sender.Address),
		sender.WithValidator(address.NewValidator(c.Sender.AllowedSuffixes...)),
	}
}

// applyDefaults sets sensible default values for all configuration fields.
func (c *Config) applyDefaults() {
	c.Sender.Address = sender.DefaultAddress
	c.Sender.AllowedSuffixes = append([]string(nil), address.DefaultSuffixes...)
	c.Provider = "stdout"
	c.Logging.Level = "info"
}

// applyEnvVars overrides configuration with environment variable values.
// Only non-empty environment variables override existing values.
func (c *Config) applyEnvVars() {
	if v := os.Getenv("MAILER_SENDER"); v != "" {
		c.Sender.Address = v
	}
	if v := os.Getenv("MAILER_ALLOWED_SUFFIXES"); v != "" {
		c.Sender.AllowedSuffixes = splitList(v)
	}
	if v := os.Getenv("MAILER_PROVIDER"); v != "" {
		c.Provider = strings.ToLower(v)
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
}

// splitList splits a comma-separated list, dropping blank entries.
func splitList(v string) []string {
	parts := strings.Split(v, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
