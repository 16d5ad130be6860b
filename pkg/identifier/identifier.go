// Package identifier generates object identifiers shaped like the keys of an Xcode project manifest.
package identifier

import (
	"crypto/md5"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

//go:generate go tool mockgen -source=identifier.go -destination=mocks/identifier.gen.go -package=mocks

// Length is the number of characters in an identifier.
const Length = 24

// Generator produces identifiers.
type Generator interface {
	// Generate returns a new identifier. Uniqueness is statistical only.
	Generate() string
}

type realGenerator struct{}

// NewGenerator creates a Generator seeded by random UUIDs.
func NewGenerator() Generator {
	return &realGenerator{}
}

// Generate hashes a fresh random UUID and keeps the first 24 hex characters, upper-cased.
func (g *realGenerator) Generate() string {
	return FromSeed(uuid.NewString())
}

// FromSeed derives an identifier from seed deterministically.
func FromSeed(seed string) string {
	sum := md5.Sum([]byte(seed))
	return strings.ToUpper(hex.EncodeToString(sum[:])[:Length])
}

// IsValid reports whether id has the identifier format: 24 characters of 0-9 and A-F.
func IsValid(id string) bool {
	if len(id) != Length {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		if (c < '0' || c > '9') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}
