package fs

import (
	"errors"
	"os"
)

// IsNotExist checks if an error indicates that a file or directory doesn't exist.
// Wrapped errors are unwrapped.
func (f *realFS) IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
