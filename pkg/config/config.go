// Package config provides configuration management functionality for the xcfonts application.
package config

import (
	"fmt"
	"strings"

	"github.com/lerenn/xcfonts/pkg/manifest"
)

const (
	// DefaultFontsDir is the directory scanned for fonts when nothing else is configured.
	DefaultFontsDir = "Assets/Fonts"
	// DefaultProjectFile is the Xcode manifest inspected when nothing else is configured.
	DefaultProjectFile = "ProjectJules.xcodeproj/project.pbxproj"
	// DefaultFontExtension is the only suffix recognized as a font by default.
	DefaultFontExtension = ".ttf"
	// DefaultConfigFile is the config file looked up in the working directory.
	DefaultConfigFile = ".xcfonts.yaml"
)

// Config represents the application configuration.
type Config struct {
	FontsDir      string             `yaml:"fonts_dir"`
	ProjectFile   string             `yaml:"project_file"`
	FontExtension string             `yaml:"font_extension"`
	MatchMode     manifest.MatchMode `yaml:"match_mode"`
}

// Default returns the built-in configuration, relative to the working directory.
func Default() Config {
	return Config{
		FontsDir:      DefaultFontsDir,
		ProjectFile:   DefaultProjectFile,
		FontExtension: DefaultFontExtension,
		MatchMode:     manifest.MatchSubstring,
	}
}

// Validate validates the configuration values.
func (c Config) Validate() error {
	if strings.TrimSpace(c.FontsDir) == "" {
		return ErrFontsDirEmpty
	}
	if strings.TrimSpace(c.ProjectFile) == "" {
		return ErrProjectFileEmpty
	}
	if len(c.FontExtension) < 2 || !strings.HasPrefix(c.FontExtension, ".") {
		return fmt.Errorf("%w: %q", ErrFontExtensionInvalid, c.FontExtension)
	}
	if _, err := manifest.ParseMatchMode(string(c.MatchMode)); err != nil {
		return fmt.Errorf("%w: %q", ErrMatchModeInvalid, c.MatchMode)
	}
	return nil
}
