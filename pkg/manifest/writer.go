package manifest

import (
	"strings"

	"github.com/lerenn/xcfonts/pkg/logger"
)

//go:generate go tool mockgen -source=writer.go -destination=mocks/writer.gen.go -package=mocks

// RegisterRequest describes the resources a Writer is asked to add to a manifest.
type RegisterRequest struct {
	// ManifestPath is the manifest to update.
	ManifestPath string
	// ResourceDir is the directory the resources live in.
	ResourceDir string
	// Names are the base names of the unregistered resources, in discovery order. May be empty.
	Names []string
}

// Writer adds unregistered resources to a manifest.
//
// An implementation that mutates the manifest must apply the whole request atomically
// and leave every unrelated byte of the file untouched.
type Writer interface {
	Register(req RegisterRequest) error
}

// guidanceWriter never touches the manifest and tells the user how to add the resources instead.
type guidanceWriter struct {
	out logger.Logger
}

// NewGuidanceWriter creates a Writer that only prints manual instructions to out.
func NewGuidanceWriter(out logger.Logger) Writer {
	return &guidanceWriter{out: out}
}

// Register prints the guidance block. It is printed even when req.Names is empty.
func (w *guidanceWriter) Register(req RegisterRequest) error {
	w.out.Logf("")
	w.out.Logf("⚠️  Direct pbxproj editing is complex and error-prone.")
	w.out.Logf("   Recommended: Use Xcode GUI to drag fonts")
	w.out.Logf("   Or: The fonts are ready in %s/ - just drag them in Xcode!", strings.TrimRight(req.ResourceDir, "/"))
	return nil
}
