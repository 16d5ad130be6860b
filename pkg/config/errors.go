package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse = errors.New("failed to parse config file")
	ErrConfigFileRead  = errors.New("failed to read config file")
	ErrConfigExists    = errors.New("configuration file already exists, use --force to overwrite")

	// Configuration validation errors.
	ErrFontsDirEmpty        = errors.New("fonts_dir cannot be empty")
	ErrProjectFileEmpty     = errors.New("project_file cannot be empty")
	ErrFontExtensionInvalid = errors.New("font_extension must start with '.' followed by at least one character")
	ErrMatchModeInvalid     = errors.New("unknown match_mode")

	// Configuration initialization errors.
	ErrConfigNotInitialized = errors.New("configuration not found. Run 'xcfonts init' to initialize")
)
