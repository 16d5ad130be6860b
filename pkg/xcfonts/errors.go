// Package xcfonts checks font files against an Xcode project manifest.
package xcfonts

import "errors"

// Error definitions for xcfonts package.
var (
	// ErrNoFontsFound is returned when the fonts directory is missing or holds no font file.
	ErrNoFontsFound = errors.New("no font files found")

	// ErrInvalidCount is returned when fewer than one identifier is requested.
	ErrInvalidCount = errors.New("count must be at least 1")

	// ErrInvalidConfiguration is returned when the effective configuration does not validate.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
