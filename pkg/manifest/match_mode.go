package manifest

import "fmt"

// MatchMode selects how a name is looked up in the manifest text.
type MatchMode string

const (
	// MatchSubstring treats any occurrence of the name in the raw text as a reference.
	// Short names can match inside longer unrelated ones.
	MatchSubstring MatchMode = "substring"

	// MatchToken requires the occurrence not to be surrounded by other file-name characters.
	MatchToken MatchMode = "token"
)

// ParseMatchMode converts a string to a MatchMode. Empty means MatchSubstring.
func ParseMatchMode(s string) (MatchMode, error) {
	switch MatchMode(s) {
	case "", MatchSubstring:
		return MatchSubstring, nil
	case MatchToken:
		return MatchToken, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMatchMode, s)
	}
}

// String implements fmt.Stringer.
func (m MatchMode) String() string {
	return string(m)
}
