// Package config_test provides tests for the configuration management package.
package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nimbushq/nimbus/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientConfig_Load(t *testing.T) {
	t.Run("LoadFromFile", func(t *testing.T) {
		configContent := `
current_profile: "staging"
profiles:
  staging:
    api: "https://api.staging.nimbus.dev"
    team: "core"
    telemetry:
      enabled: true
      endpoint: "https://telemetry.staging.nimbus.dev/events"
  default:
    api: "https://api.nimbus.dev"
    telemetry:
      enabled: false
`
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")
		err := os.WriteFile(configFile, []byte(configContent), 0o644)
		require.NoError(t, err)

		cfg, err := config.LoadClientConfig(configFile)
		require.NoError(t, err)
		assert.Equal(t, "staging", cfg.CurrentProfile)
		assert.Len(t, cfg.Profiles, 2)

		prof, err := cfg.Profile()
		require.NoError(t, err)
		assert.Equal(t, "https://api.staging.nimbus.dev", prof.API)
		assert.Equal(t, "core", prof.Team)
		assert.True(t, prof.Telemetry.Enabled)
		assert.Equal(t, "https://telemetry.staging.nimbus.dev/events", prof.Telemetry.Endpoint)
	})

	t.Run("MissingFileReturnsDefaults", func(t *testing.T) {
		cfg, err := config.LoadClientConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "default", cfg.CurrentProfile)

		prof, err := cfg.Profile()
		require.NoError(t, err)
		assert.Equal(t, config.DefaultAPI, prof.API)
		assert.True(t, prof.Telemetry.Enabled)
	})

	t.Run("UnknownCurrentProfile", func(t *testing.T) {
		configContent := `
current_profile: "missing"
profiles:
  default:
    api: "https://api.nimbus.dev"
`
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte(configContent), 0o644))

		_, err := config.LoadClientConfig(configFile)
		assert.Error(t, err)
	})
}

func TestClientConfig_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := config.DefaultClientConfig()
	prof := cfg.Profiles["default"]
	prof.Team = "platform"
	cfg.Profiles["default"] = prof

	require.NoError(t, config.SaveClientConfig(path, cfg))

	loaded, err := config.LoadClientConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.CurrentProfile, loaded.CurrentProfile)
	assert.Equal(t, "platform", loaded.Profiles["default"].Team)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestTelemetryEnabled(t *testing.T) {
	prof := &config.ClientProfile{Telemetry: config.TelemetryConfig{Enabled: true}}

	t.Run("FromProfile", func(t *testing.T) {
		assert.True(t, config.TelemetryEnabled(prof))

		off := &config.ClientProfile{}
		assert.False(t, config.TelemetryEnabled(off))
	})

	t.Run("EnvOverrideOff", func(t *testing.T) {
		t.Setenv("NIMBUS_TELEMETRY", "off")
		assert.False(t, config.TelemetryEnabled(prof))
	})

	t.Run("EnvOverrideOn", func(t *testing.T) {
		t.Setenv("NIMBUS_TELEMETRY", "on")
		off := &config.ClientProfile{}
		assert.True(t, config.TelemetryEnabled(off))
	})
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.ClientConfig
		wantErr bool
	}{
		{
			name: "valid",
			cfg: config.ClientConfig{
				CurrentProfile: "default",
				Profiles:       map[string]config.ClientProfile{"default": {API: config.DefaultAPI}},
			},
		},
		{
			name:    "empty current profile",
			cfg:     config.ClientConfig{Profiles: map[string]config.ClientProfile{"default": {}}},
			wantErr: true,
		},
		{
			name:    "no profiles",
			cfg:     config.ClientConfig{CurrentProfile: "default"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
