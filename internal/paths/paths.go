// Package paths resolves the configuration and data directory
// locations for the librarian CLI.
package paths

import (
	"os"
	"path/filepath"
)

// CWD-relative directory names used when no override is active.
const (
	DefaultConfigDirName = ".librarian"
	DefaultDataDirName   = ".librarian-db"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "LIBRARIAN_CONFIG_DIR"
	EnvDataDir   = "LIBRARIAN_DATA_DIR"
)

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > LIBRARIAN_CONFIG_DIR env > $(CWD)/.librarian.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultConfigDirName), nil
}

// ResolveDataDir returns the data directory following the precedence
// chain: flag > config value > LIBRARIAN_DATA_DIR env >
// $(CWD)/.librarian-db.
func ResolveDataDir(flag, configValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DefaultDataDirName), nil
}
