package xcfonts

import (
	"fmt"

	"github.com/lerenn/xcfonts/pkg/dependencies"
	"github.com/lerenn/xcfonts/pkg/logger"
)

// XCFonts interface provides font registration checks for an Xcode project.
type XCFonts interface {
	// Check discovers fonts and reports which ones the project manifest already references.
	Check(opts ...CheckOpts) (Result, error)
	// GenerateIDs returns count new manifest-style identifiers.
	GenerateIDs(count int) ([]string, error)
	// SetLogger sets the verbose logger for this instance.
	SetLogger(logger logger.Logger)
}

// NewXCFontsParams contains parameters for creating a new XCFonts instance.
type NewXCFontsParams struct {
	Dependencies *dependencies.Dependencies
}

type realXCFonts struct {
	deps *dependencies.Dependencies
}

// NewXCFonts creates a new XCFonts instance.
func NewXCFonts(params NewXCFontsParams) (XCFonts, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}

	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dependencies: %w", err)
	}

	return &realXCFonts{
		deps: deps,
	}, nil
}

// VerbosePrint logs a formatted message using the current logger.
func (x *realXCFonts) VerbosePrint(msg string, args ...interface{}) {
	if x.deps.Logger != nil {
		x.deps.Logger.Logf(msg, args...)
	}
}

// SetLogger sets the logger for this instance.
func (x *realXCFonts) SetLogger(logger logger.Logger) {
	x.deps.Logger = logger
}
