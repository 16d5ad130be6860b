// Package fs provides file system operations and error definitions.
package fs

import "errors"

// Error definitions for fs package.
var (
	// ErrNotRegularFile is returned when a path expected to hold a file is a directory.
	ErrNotRegularFile = errors.New("not a regular file")
)
