// Package discovery finds candidate resource files in a directory.
package discovery

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/xcfonts/pkg/fs"
)

// Candidate is a discovered file under consideration for registration.
type Candidate struct {
	// Path is the directory joined with the file name.
	Path string
	// Name is the base file name.
	Name string
}

// Discover returns the entries of dir whose name ends with ext, in directory order.
// A directory that does not exist yields no candidates and no error.
func Discover(fsInstance fs.FS, dir, ext string) ([]Candidate, error) {
	entries, err := fsInstance.ReadDir(dir)
	if err != nil {
		if fsInstance.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w %s: %w", ErrListDirectory, dir, err)
	}

	var candidates []Candidate
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		candidates = append(candidates, Candidate{
			Path: filepath.Join(dir, entry.Name()),
			Name: entry.Name(),
		})
	}

	return candidates, nil
}

// Names returns the base names of candidates, in order. It is nil for no candidates.
func Names(candidates []Candidate) []string {
	var names []string
	for _, c := range candidates {
		names = append(names, c.Name)
	}
	return names
}
