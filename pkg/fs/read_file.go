package fs

import (
	"fmt"
	"os"
)

// ReadFile reads the whole contents of a file into memory.
func (f *realFS) ReadFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotRegularFile, path)
	}
	return os.ReadFile(path)
}
