// Package config provides configuration management for the nimbus CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// ClientConfig holds configuration for the nimbus CLI.
type ClientConfig struct {
	CurrentProfile string                   `mapstructure:"current_profile" json:"current_profile" yaml:"current_profile"`
	Profiles       map[string]ClientProfile `mapstructure:"profiles" json:"profiles" yaml:"profiles"`
}

// ClientProfile represents one connection profile.
type ClientProfile struct {
	API       string          `mapstructure:"api" json:"api" yaml:"api"`
	Team      string          `mapstructure:"team" json:"team,omitempty" yaml:"team,omitempty"`
	TLS       ClientTLSConfig `mapstructure:"tls" json:"tls" yaml:"tls"`
	Telemetry TelemetryConfig `mapstructure:"telemetry" json:"telemetry" yaml:"telemetry"`
}

// ClientTLSConfig holds client TLS configuration.
type ClientTLSConfig struct {
	CACert     string `mapstructure:"ca_cert" json:"ca_cert" yaml:"ca_cert"`
	ClientCert string `mapstructure:"client_cert" json:"client_cert" yaml:"client_cert"`
	ClientKey  string `mapstructure:"client_key" json:"client_key" yaml:"client_key"`
}

// TelemetryConfig holds anonymized usage reporting configuration.
type TelemetryConfig struct {
	// Enabled turns event recording and delivery on or off. The
	// NIMBUS_TELEMETRY environment variable overrides it.
	Enabled bool `mapstructure:"enabled" json:"enabled" yaml:"enabled"`

	// Endpoint is the reporting destination. Empty means the default
	// platform telemetry endpoint.
	Endpoint string `mapstructure:"endpoint" json:"endpoint,omitempty" yaml:"endpoint,omitempty"`

	// Spool is the local queue database file used when the endpoint is
	// not reachable. Empty means the default location under the state
	// directory.
	Spool string `mapstructure:"spool" json:"spool,omitempty" yaml:"spool,omitempty"`
}

// DefaultAPI is the production platform API endpoint.
const DefaultAPI = "https://api.nimbus.dev"

// DefaultClientConfig returns the configuration used when no config
// file exists yet.
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		CurrentProfile: "default",
		Profiles: map[string]ClientProfile{
			"default": {
				API:       DefaultAPI,
				Telemetry: TelemetryConfig{Enabled: true},
			},
		},
	}
}

// DefaultConfigPath returns the default client config file location.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".nimbus", "config.yaml")
}

// LoadClientConfig loads client configuration from a file. If the file
// doesn't exist, returns the default configuration.
func LoadClientConfig(path string) (*ClientConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultClientConfig(), nil
		}
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return DefaultClientConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg ClientConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SaveClientConfig saves client configuration to a file.
func SaveClientConfig(path string, cfg *ClientConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks the configuration for internal consistency.
func (c *ClientConfig) Validate() error {
	if c.CurrentProfile == "" {
		return errors.New("current_profile cannot be empty")
	}
	if len(c.Profiles) == 0 {
		return errors.New("at least one profile must be defined")
	}
	if _, ok := c.Profiles[c.CurrentProfile]; !ok {
		return fmt.Errorf("profile %q not found in config", c.CurrentProfile)
	}
	return nil
}

// Profile returns the currently selected profile.
func (c *ClientConfig) Profile() (*ClientProfile, error) {
	prof, ok := c.Profiles[c.CurrentProfile]
	if !ok {
		return nil, fmt.Errorf("profile %q not found", c.CurrentProfile)
	}
	return &prof, nil
}

// TelemetryEnabled reports whether usage reporting is on for the given
// profile, honoring the NIMBUS_TELEMETRY environment override.
func TelemetryEnabled(prof *ClientProfile) bool {
	if env := os.Getenv("NIMBUS_TELEMETRY"); env != "" {
		return env == "on" || env == "true" || env == "1"
	}
	return prof.Telemetry.Enabled
}
