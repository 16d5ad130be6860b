package fs

import "os"

// ReadDir reads the contents of a directory.
// Entries come back in the order the directory yields them, without sorting.
func (f *realFS) ReadDir(path string) ([]os.DirEntry, error) {
	dir, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = dir.Close()
	}()

	return dir.ReadDir(-1)
}
