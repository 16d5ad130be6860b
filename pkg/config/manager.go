package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/lerenn/xcfonts/configs"
	"github.com/lerenn/xcfonts/pkg/fs"
	"gopkg.in/yaml.v3"
)

//go:generate go tool mockgen -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	GetConfig() (Config, error)
	GetConfigWithFallback() (Config, error)
	SaveConfig(config Config) error
	InitConfig(force bool) error
	GetConfigPath() string
	DefaultConfig() Config
}

// realManager manages configuration with an embedded config path.
type realManager struct {
	fs         fs.FS
	configPath string
}

// NewManager creates a new Manager instance with the specified config path.
func NewManager(fsInstance fs.FS, configPath string) Manager {
	return &realManager{
		fs:         fsInstance,
		configPath: configPath,
	}
}

// GetConfig loads configuration from the embedded config path.
// The result is not validated: command-line overrides are applied on top of it first.
func (c *realManager) GetConfig() (Config, error) {
	exists, err := c.fs.Exists(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileRead, err)
	}
	if !exists {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotInitialized, c.configPath)
	}

	data, err := c.fs.ReadFile(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileRead, err)
	}

	return parse(data)
}

// GetConfigWithFallback loads the configuration, falling back to defaults when the file is missing.
// A config file that exists but does not parse or validate is still an error.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	cfg, err := c.GetConfig()
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, ErrConfigNotInitialized) {
		return c.DefaultConfig(), nil
	}
	return Config{}, err
}

// SaveConfig saves configuration to the embedded config path.
func (c *realManager) SaveConfig(config Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if err := c.fs.MkdirAll(filepath.Dir(c.configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := c.fs.WriteFileAtomic(c.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	return nil
}

// InitConfig writes the embedded default configuration to the config path.
func (c *realManager) InitConfig(force bool) error {
	exists, err := c.fs.Exists(c.configPath)
	if err != nil {
		return fmt.Errorf("failed to check configuration file: %w", err)
	}
	if exists && !force {
		return fmt.Errorf("%w: %s", ErrConfigExists, c.configPath)
	}

	if err := c.fs.MkdirAll(filepath.Dir(c.configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := c.fs.WriteFileAtomic(c.configPath, configs.DefaultConfigYAML, 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	return nil
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// DefaultConfig returns the default configuration.
func (c *realManager) DefaultConfig() Config {
	return Default()
}

// parse decodes data over the defaults, so keys missing from the file keep their default value.
// Validation is left to the caller, which may still override fields.
func parse(data []byte) (Config, error) {
	config := Default()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	return config, nil
}
