package cli

import (
	"io"

	"github.com/lerenn/xcfonts/pkg/dependencies"
	"github.com/lerenn/xcfonts/pkg/logger"
	"github.com/lerenn/xcfonts/pkg/manifest"
	"github.com/lerenn/xcfonts/pkg/xcfonts"
)

// verboseLogger is the logger installed by the last NewXCFonts call with Verbose set.
var verboseLogger logger.Logger

// Sync flushes the verbose logger, if one was created.
// Errors are ignored: zap reports one when syncing a terminal stderr.
func Sync() {
	if verboseLogger != nil {
		_ = logger.Sync(verboseLogger)
	}
}

// NewXCFonts creates a new XCFonts instance reporting to out.
func NewXCFonts(out io.Writer) (xcfonts.XCFonts, error) {
	output := logger.NewWriterLogger(out)
	if Quiet {
		output = logger.NewNoopLogger()
	}

	deps := dependencies.New().
		WithConfig(NewConfigManager()).
		WithOutput(output).
		WithWriter(manifest.NewGuidanceWriter(output))

	if Verbose {
		verboseLogger = logger.NewVerboseLogger()
		deps = deps.WithLogger(verboseLogger)
	}

	return xcfonts.NewXCFonts(xcfonts.NewXCFontsParams{
		Dependencies: deps,
	})
}
