//go:build unit

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lerenn/xcfonts/cmd/xcfonts/internal/cli"
	"github.com/lerenn/xcfonts/configs"
	"github.com/lerenn/xcfonts/pkg/config"
	"github.com/lerenn/xcfonts/pkg/fs"
	"github.com/lerenn/xcfonts/pkg/identifier"
	"github.com/lerenn/xcfonts/pkg/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer

	rootCmd := newRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

type workspace struct {
	configPath  string
	fontsDir    string
	projectFile string
}

func newWorkspace(t *testing.T, manifestContent string, fonts ...string) workspace {
	t.Helper()
	root := t.TempDir()
	ws := workspace{
		configPath:  filepath.Join(root, config.DefaultConfigFile),
		fontsDir:    filepath.Join(root, "Assets", "Fonts"),
		projectFile: filepath.Join(root, "App.xcodeproj", "project.pbxproj"),
	}

	require.NoError(t, os.MkdirAll(ws.fontsDir, 0755))
	for _, font := range fonts {
		require.NoError(t, os.WriteFile(filepath.Join(ws.fontsDir, font), []byte("font"), 0644))
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(ws.projectFile), 0755))
	require.NoError(t, os.WriteFile(ws.projectFile, []byte(manifestContent), 0644))

	return ws
}

func (ws workspace) args(extra ...string) []string {
	return append([]string{"-c", ws.configPath, "--fonts-dir", ws.fontsDir, "--project", ws.projectFile}, extra...)
}

func TestRoot_RunsCheck(t *testing.T) {
	ws := newWorkspace(t, "/* Inter-Regular.ttf */", "Inter-Regular.ttf", "Inter-Bold.ttf")

	out, err := execute(t, ws.args()...)
	require.NoError(t, err)

	assert.Contains(t, out, "Found 2 font files\n")
	assert.Contains(t, out, "  Inter-Regular.ttf already in project\n")
	assert.Contains(t, out, "  Adding Inter-Bold.ttf...\n")
	assert.Contains(t, out, "Direct pbxproj editing is complex and error-prone.")
	assert.Contains(t, out, "The fonts are ready in "+ws.fontsDir+"/ - just drag them in Xcode!")
}

func TestCheck_Subcommand(t *testing.T) {
	ws := newWorkspace(t, "path = Inter-Regular.ttf;", "Inter-Regular.ttf")

	out, err := execute(t, append([]string{"check"}, ws.args()...)...)
	require.NoError(t, err)

	assert.Contains(t, out, "Found 1 font files\n")
	assert.Contains(t, out, "  Inter-Regular.ttf already in project\n")
	assert.NotContains(t, out, "Adding")
}

func TestCheck_NoFontsIsNotAnError(t *testing.T) {
	ws := newWorkspace(t, "", "Inter-Regular.otf")

	out, err := execute(t, append([]string{"check"}, ws.args()...)...)
	require.NoError(t, err)
	assert.Equal(t, "No font files found!\n", out)
}

func TestCheck_DirectoryNamedLikeFontIsSkipped(t *testing.T) {
	ws := newWorkspace(t, "")
	require.NoError(t, os.Mkdir(filepath.Join(ws.fontsDir, "Legacy.ttf"), 0755))

	out, err := execute(t, append([]string{"check"}, ws.args()...)...)
	require.NoError(t, err)
	assert.Equal(t, "No font files found!\n", out)
}

func TestCheck_MissingManifestFails(t *testing.T) {
	ws := newWorkspace(t, "", "Inter-Regular.ttf")

	_, err := execute(t, "check", "-c", ws.configPath,
		"--fonts-dir", ws.fontsDir, "--project", filepath.Join(filepath.Dir(ws.projectFile), "missing.pbxproj"))
	assert.ErrorIs(t, err, manifest.ErrManifestRead)
}

func TestCheck_TokenMatch(t *testing.T) {
	ws := newWorkspace(t, "path = MyInter.ttf;", "Inter.ttf")

	out, err := execute(t, append([]string{"check"}, ws.args("--match", "token")...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "  Adding Inter.ttf...\n")

	out, err = execute(t, append([]string{"check"}, ws.args()...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "  Inter.ttf already in project\n")
}

func TestCheck_PartialConfigWithFlags(t *testing.T) {
	ws := newWorkspace(t, "path = MyInter.ttf;", "Inter.ttf")
	require.NoError(t, os.WriteFile(ws.configPath, []byte("match_mode: token\n"), 0644))

	out, err := execute(t, append([]string{"check"}, ws.args()...)...)
	require.NoError(t, err)

	// match_mode comes from the file, paths from the flags
	assert.Contains(t, out, "Found 1 font files\n")
	assert.Contains(t, out, "  Adding Inter.ttf...\n")
}

func TestCheck_InvalidMatchMode(t *testing.T) {
	ws := newWorkspace(t, "", "Inter.ttf")

	_, err := execute(t, append([]string{"check"}, ws.args("--match", "fuzzy")...)...)
	assert.ErrorIs(t, err, manifest.ErrUnknownMatchMode)
}

func TestCheck_Quiet(t *testing.T) {
	ws := newWorkspace(t, "", "Inter.ttf")

	out, err := execute(t, append([]string{"check", "-q"}, ws.args()...)...)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCheck_Verbose(t *testing.T) {
	ws := newWorkspace(t, "/* Inter-Regular.ttf */", "Inter-Regular.ttf")

	out, err := execute(t, append([]string{"check", "-v"}, ws.args()...)...)
	require.NoError(t, err)

	// Diagnostics go to stderr through zap, the report is unchanged
	assert.Contains(t, out, "  Inter-Regular.ttf already in project\n")
	assert.True(t, cli.Verbose)
	cli.Sync()
}

func TestID(t *testing.T) {
	ws := newWorkspace(t, "")

	out, err := execute(t, "id", "-c", ws.configPath, "-n", "3")
	require.NoError(t, err)

	ids := strings.Fields(out)
	require.Len(t, ids, 3)
	for _, id := range ids {
		assert.True(t, identifier.IsValid(id), id)
	}
}

func TestID_InvalidCount(t *testing.T) {
	ws := newWorkspace(t, "")

	_, err := execute(t, "id", "-c", ws.configPath, "-n", "0")
	assert.Error(t, err)
}

func TestInit(t *testing.T) {
	ws := newWorkspace(t, "")

	out, err := execute(t, "init", "-c", ws.configPath)
	require.NoError(t, err)
	assert.Equal(t, "Configuration written to "+ws.configPath+"\n", out)

	content, err := os.ReadFile(ws.configPath)
	require.NoError(t, err)
	assert.Equal(t, configs.DefaultConfigYAML, content)

	_, err = execute(t, "init", "-c", ws.configPath)
	assert.ErrorIs(t, err, config.ErrConfigExists)

	_, err = execute(t, "init", "-c", ws.configPath, "--force")
	assert.NoError(t, err)
}

func TestInit_WithValues(t *testing.T) {
	ws := newWorkspace(t, "path = MyInter.ttf;", "Inter.ttf")

	out, err := execute(t, "init", "-c", ws.configPath,
		"--fonts-dir", ws.fontsDir, "--project", ws.projectFile, "--match", "token")
	require.NoError(t, err)
	assert.Equal(t, "Configuration written to "+ws.configPath+"\n", out)

	cfg, err := config.NewManager(fs.NewFS(), ws.configPath).GetConfig()
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		FontsDir:      ws.fontsDir,
		ProjectFile:   ws.projectFile,
		FontExtension: config.DefaultFontExtension,
		MatchMode:     manifest.MatchToken,
	}, cfg)

	// The saved config drives a check without any flag
	out, err = execute(t, "check", "-c", ws.configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "  Adding Inter.ttf...\n")

	// Refuses to overwrite without --force
	_, err = execute(t, "init", "-c", ws.configPath, "--ext", ".otf")
	assert.ErrorIs(t, err, config.ErrConfigExists)

	_, err = execute(t, "init", "-c", ws.configPath, "--ext", ".otf", "--force")
	require.NoError(t, err)
	cfg, err = config.NewManager(fs.NewFS(), ws.configPath).GetConfig()
	require.NoError(t, err)
	assert.Equal(t, ".otf", cfg.FontExtension)
	assert.Equal(t, config.DefaultFontsDir, cfg.FontsDir)
}

func TestInit_InvalidValues(t *testing.T) {
	ws := newWorkspace(t, "")

	_, err := execute(t, "init", "-c", ws.configPath, "--ext", "ttf")
	assert.ErrorIs(t, err, config.ErrFontExtensionInvalid)

	_, err = execute(t, "init", "-c", ws.configPath, "--match", "fuzzy")
	assert.ErrorIs(t, err, manifest.ErrUnknownMatchMode)

	_, statErr := os.Stat(ws.configPath)
	assert.True(t, os.IsNotExist(statErr))
}
