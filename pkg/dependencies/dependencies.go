// Package dependencies provides a centralized dependency container for the xcfonts application.
// This package follows Go idioms for dependency injection by grouping related dependencies
// together and providing a fluent API for configuration.
package dependencies

import (
	"errors"

	"github.com/lerenn/xcfonts/pkg/config"
	"github.com/lerenn/xcfonts/pkg/fs"
	"github.com/lerenn/xcfonts/pkg/identifier"
	"github.com/lerenn/xcfonts/pkg/logger"
	"github.com/lerenn/xcfonts/pkg/manifest"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing               = errors.New("fs dependency is required but not set")
	ErrConfigMissing           = errors.New("config dependency is required but not set")
	ErrLoggerMissing           = errors.New("logger dependency is required but not set")
	ErrOutputMissing           = errors.New("output dependency is required but not set")
	ErrIdentifierMissing       = errors.New("identifier generator dependency is required but not set")
	ErrRegistryProviderMissing = errors.New("registry provider dependency is required but not set")
	ErrWriterMissing           = errors.New("manifest writer dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS     fs.FS
	Config config.Manager
	// Logger receives verbose diagnostics.
	Logger logger.Logger
	// Output receives the report shown to the user.
	Output logger.Logger

	Identifier       identifier.Generator
	RegistryProvider manifest.RegistryProvider
	Writer           manifest.Writer
}

// New creates a new Dependencies instance with sensible defaults.
func New() *Dependencies {
	return &Dependencies{
		FS:               fs.NewFS(),
		Logger:           logger.NewNoopLogger(),
		Output:           logger.NewDefaultLogger(),
		Identifier:       identifier.NewGenerator(),
		RegistryProvider: manifest.Load,
		// Note: Config and Writer are intentionally left nil
		// as they depend on the config path and the chosen output
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithOutput sets the user-facing output and returns the instance for chaining.
func (d *Dependencies) WithOutput(output logger.Logger) *Dependencies {
	d.Output = output
	return d
}

// WithIdentifier sets the identifier generator and returns the instance for chaining.
func (d *Dependencies) WithIdentifier(generator identifier.Generator) *Dependencies {
	d.Identifier = generator
	return d
}

// WithRegistryProvider sets the manifest registry provider and returns the instance for chaining.
func (d *Dependencies) WithRegistryProvider(rp manifest.RegistryProvider) *Dependencies {
	d.RegistryProvider = rp
	return d
}

// WithWriter sets the manifest writer and returns the instance for chaining.
func (d *Dependencies) WithWriter(w manifest.Writer) *Dependencies {
	d.Writer = w
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	missing bool
	err     error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS == nil, ErrFSMissing},
		{d.Config == nil, ErrConfigMissing},
		{d.Logger == nil, ErrLoggerMissing},
		{d.Output == nil, ErrOutputMissing},
		{d.Identifier == nil, ErrIdentifierMissing},
		{d.RegistryProvider == nil, ErrRegistryProviderMissing},
		{d.Writer == nil, ErrWriterMissing},
	}

	for _, check := range checks {
		if check.missing {
			return check.err
		}
	}
	return nil
}
