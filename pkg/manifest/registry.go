package manifest

import (
	"fmt"
	"strings"

	"github.com/lerenn/xcfonts/pkg/fs"
)

// Registry reports whether a resource name is already referenced by a manifest.
type Registry interface {
	IsRegistered(name string) bool
}

// RegistryProvider loads a Registry for the manifest at path.
type RegistryProvider func(fsInstance fs.FS, path string, mode MatchMode) (Registry, error)

// textRegistry keeps the raw manifest text and searches it.
type textRegistry struct {
	content string
	mode    MatchMode
}

// Load reads the whole manifest at path and returns a registry searching its text.
func Load(fsInstance fs.FS, path string, mode MatchMode) (Registry, error) {
	mode, err := ParseMatchMode(string(mode))
	if err != nil {
		return nil, err
	}

	data, err := fsInstance.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrManifestRead, path, err)
	}

	return NewRegistry(data, mode), nil
}

// NewRegistry returns a registry over already loaded manifest content.
func NewRegistry(content []byte, mode MatchMode) Registry {
	if mode == "" {
		mode = MatchSubstring
	}
	return &textRegistry{
		content: string(content),
		mode:    mode,
	}
}

// IsRegistered reports whether name is found in the manifest text.
func (r *textRegistry) IsRegistered(name string) bool {
	if name == "" {
		return false
	}
	if r.mode == MatchToken {
		return containsToken(r.content, name)
	}
	return strings.Contains(r.content, name)
}

// containsToken reports whether name occurs in s with no file-name character on either side.
func containsToken(s, name string) bool {
	for offset := 0; offset <= len(s)-len(name); {
		i := strings.Index(s[offset:], name)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(name)
		if (start == 0 || !isNameByte(s[start-1])) && (end == len(s) || !isNameByte(s[end])) {
			return true
		}
		offset = start + 1
	}
	return false
}

func isNameByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	case b == '.', b == '_', b == '-', b == '+':
		return true
	}
	return false
}
