//go:build unit

package xcfonts

import (
	"bytes"
	"io/fs"
	"os"
	"testing"
	"time"

	configmocks "github.com/lerenn/xcfonts/pkg/config/mocks"
	"github.com/lerenn/xcfonts/pkg/dependencies"
	fsmocks "github.com/lerenn/xcfonts/pkg/fs/mocks"
	identifiermocks "github.com/lerenn/xcfonts/pkg/identifier/mocks"
	"github.com/lerenn/xcfonts/pkg/logger"
	manifestmocks "github.com/lerenn/xcfonts/pkg/manifest/mocks"
	"go.uber.org/mock/gomock"
)

// fixture bundles the mocks behind a realXCFonts under test.
type fixture struct {
	xc         *realXCFonts
	fs         *fsmocks.MockFS
	config     *configmocks.MockManager
	identifier *identifiermocks.MockGenerator
	writer     *manifestmocks.MockWriter
	output     *bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		fs:         fsmocks.NewMockFS(ctrl),
		config:     configmocks.NewMockManager(ctrl),
		identifier: identifiermocks.NewMockGenerator(ctrl),
		writer:     manifestmocks.NewMockWriter(ctrl),
		output:     &bytes.Buffer{},
	}
	f.xc = &realXCFonts{
		deps: dependencies.New().
			WithFS(f.fs).
			WithConfig(f.config).
			WithLogger(logger.NewNoopLogger()).
			WithOutput(logger.NewWriterLogger(f.output)).
			WithIdentifier(f.identifier).
			WithWriter(f.writer),
	}
	return f
}

func entries(names ...string) []os.DirEntry {
	out := make([]os.DirEntry, 0, len(names))
	for _, n := range names {
		out = append(out, dirEntry{name: n})
	}
	return out
}

// dirEntry is a minimal os.DirEntry for mocked directory listings.
type dirEntry struct {
	name  string
	isDir bool
}

func (e dirEntry) Name() string { return e.name }
func (e dirEntry) IsDir() bool { return e.isDir }
func (e dirEntry) Type() fs.FileMode {
	if e.isDir {
		return fs.ModeDir
	}
	return 0
}
func (e dirEntry) Info() (fs.FileInfo, error) { return fileInfo(e), nil }

type fileInfo dirEntry

func (i fileInfo) Name() string { return i.name }
func (i fileInfo) Size() int64 { return 0 }
func (i fileInfo) Mode() fs.FileMode { return dirEntry(i).Type() }
func (i fileInfo) ModTime() time.Time { return time.Time{} }
func (i fileInfo) IsDir() bool { return i.isDir }
func (i fileInfo) Sys() any { return nil }
