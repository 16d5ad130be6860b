// Package manifest answers whether resources are referenced by an Xcode project manifest.
package manifest

import "errors"

// Error definitions for manifest package.
var (
	// ErrManifestRead is returned when the manifest cannot be opened or read.
	ErrManifestRead = errors.New("failed to read project manifest")

	// ErrUnknownMatchMode is returned for a match mode that is not supported.
	ErrUnknownMatchMode = errors.New("unknown match mode")
)
