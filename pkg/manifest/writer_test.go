//go:build unit

package manifest

import (
	"bytes"
	"testing"

	"github.com/lerenn/xcfonts/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuidanceWriter_Register(t *testing.T) {
	var buf bytes.Buffer
	writer := NewGuidanceWriter(logger.NewWriterLogger(&buf))

	err := writer.Register(RegisterRequest{
		ManifestPath: "App.xcodeproj/project.pbxproj",
		ResourceDir:  "Assets/Fonts/",
		Names:        []string{"Inter-Bold.ttf"},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Direct pbxproj editing is complex and error-prone.")
	assert.Contains(t, out, "Recommended: Use Xcode GUI to drag fonts")
	assert.Contains(t, out, "The fonts are ready in Assets/Fonts/ - just drag them in Xcode!")
}

func TestGuidanceWriter_Register_NoNames(t *testing.T) {
	var buf bytes.Buffer
	writer := NewGuidanceWriter(logger.NewWriterLogger(&buf))

	require.NoError(t, writer.Register(RegisterRequest{ResourceDir: "Assets/Fonts"}))

	// Guidance is printed even when nothing is missing
	assert.Contains(t, buf.String(), "Recommended: Use Xcode GUI to drag fonts")
}
