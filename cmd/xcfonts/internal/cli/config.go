// Package cli provides common configuration and utility functions for the xcfonts CLI.
package cli

import (
	"github.com/lerenn/xcfonts/pkg/config"
	"github.com/lerenn/xcfonts/pkg/fs"
)

var (
	// Quiet suppresses all output except errors.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
)

// GetConfigPath returns the config file path, relative to the working directory unless overridden.
func GetConfigPath() string {
	if ConfigPath != "" {
		return ConfigPath
	}
	return config.DefaultConfigFile
}

// NewConfigManager creates a new Manager with the appropriate config path.
func NewConfigManager() config.Manager {
	return config.NewManager(fs.NewFS(), GetConfigPath())
}
