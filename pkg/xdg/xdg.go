// Package xdg provides XDG Base Directory Specification helpers for
// nimbus. It locates and creates the user-specific configuration and
// state directories the CLI stores its files in.
//
// See: https://specifications.freedesktop.org/basedir-spec/basedir-spec-latest.html
package xdg

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppName is the application name used for nimbus directories.
const AppName = "nimbus"

// DirType represents the type of XDG directory.
type DirType string

const (
	// ConfigDir is for user-specific configuration files.
	ConfigDir DirType = "config"
	// StateDir is for user-specific state files (preserved between sessions).
	StateDir DirType = "state"
)

// Permissions for different directory types.
const (
	ConfigDirPerm = 0o755
	StateDirPerm  = 0o700
)

// GetDir returns the XDG directory for the given type and application
// name, creating it with appropriate permissions if it does not exist.
func GetDir(dirType DirType, appName string) (string, error) {
	var baseDir string
	var perm os.FileMode
	var err error

	switch dirType {
	case ConfigDir:
		baseDir, err = os.UserConfigDir()
		perm = ConfigDirPerm
	case StateDir:
		baseDir, err = getUserStateDir()
		perm = StateDirPerm
	default:
		return "", fmt.Errorf("unknown directory type: %s", dirType)
	}

	if err != nil {
		return "", fmt.Errorf("failed to get %s directory: %w", dirType, err)
	}

	appDir := filepath.Join(baseDir, appName)
	if err := os.MkdirAll(appDir, perm); err != nil {
		return "", fmt.Errorf("failed to create %s directory: %w", dirType, err)
	}

	return appDir, nil
}

// getUserStateDir returns the user state directory according to the XDG
// spec, falling back to ~/.local/state if XDG_STATE_HOME is not set.
func getUserStateDir() (string, error) {
	if xdgStateHome := os.Getenv("XDG_STATE_HOME"); xdgStateHome != "" {
		return xdgStateHome, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".local", "state"), nil
}

// NimbusConfigDir returns the nimbus configuration directory.
func NimbusConfigDir() (string, error) {
	return GetDir(ConfigDir, AppName)
}

// NimbusStateDir returns the nimbus state directory.
func NimbusStateDir() (string, error) {
	return GetDir(StateDir, AppName)
}

// ConfigFile returns the full path to a file within the nimbus config
// directory.
func ConfigFile(filename string) (string, error) {
	configDir, err := NimbusConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, filename), nil
}

// StateFile returns the full path to a file within the nimbus state
// directory.
func StateFile(filename string) (string, error) {
	stateDir, err := NimbusStateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(stateDir, filename), nil
}
