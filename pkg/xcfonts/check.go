package xcfonts

import (
	"fmt"

	"github.com/lerenn/xcfonts/pkg/config"
	"github.com/lerenn/xcfonts/pkg/discovery"
	"github.com/lerenn/xcfonts/pkg/manifest"
)

// CheckOpts overrides configuration values for a single Check. Empty fields keep the configured value.
type CheckOpts struct {
	FontsDir      string
	ProjectFile   string
	FontExtension string
	MatchMode     manifest.MatchMode
}

// Check runs discovery, inspects the manifest and hands unregistered fonts to the writer.
// The manifest is not read when no font is found.
func (x *realXCFonts) Check(opts ...CheckOpts) (Result, error) {
	cfg, err := x.effectiveConfig(opts)
	if err != nil {
		return Result{}, err
	}

	x.VerbosePrint("Scanning %s for *%s files", cfg.FontsDir, cfg.FontExtension)
	candidates, err := discovery.Discover(x.deps.FS, cfg.FontsDir, cfg.FontExtension)
	if err != nil {
		return Result{}, err
	}

	if len(candidates) == 0 {
		x.deps.Output.Logf("No font files found!")
		return Result{}, ErrNoFontsFound
	}

	x.deps.Output.Logf("Found %d font files", len(candidates))

	x.VerbosePrint("Reading manifest %s (match mode: %s)", cfg.ProjectFile, cfg.MatchMode)
	registry, err := x.deps.RegistryProvider(x.deps.FS, cfg.ProjectFile, cfg.MatchMode)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		FontsDir:    cfg.FontsDir,
		ProjectFile: cfg.ProjectFile,
		Candidates:  make([]CandidateStatus, 0, len(candidates)),
	}
	var missing []discovery.Candidate
	for _, candidate := range candidates {
		if registry.IsRegistered(candidate.Name) {
			x.deps.Output.Logf("  %s already in project", candidate.Name)
			result.Candidates = append(result.Candidates, CandidateStatus{Candidate: candidate, Status: StatusPresent})
			continue
		}

		x.deps.Output.Logf("  Adding %s...", candidate.Name)
		result.Candidates = append(result.Candidates, CandidateStatus{Candidate: candidate, Status: StatusMissing})
		missing = append(missing, candidate)
	}

	if err := x.deps.Writer.Register(manifest.RegisterRequest{
		ManifestPath: cfg.ProjectFile,
		ResourceDir:  cfg.FontsDir,
		Names:        discovery.Names(missing),
	}); err != nil {
		return result, fmt.Errorf("failed to register fonts: %w", err)
	}

	return result, nil
}

// effectiveConfig loads the configuration and applies the first CheckOpts on top of it.
func (x *realXCFonts) effectiveConfig(opts []CheckOpts) (config.Config, error) {
	cfg, err := x.deps.Config.GetConfigWithFallback()
	if err != nil {
		return config.Config{}, err
	}

	if len(opts) > 0 {
		o := opts[0]
		if o.FontsDir != "" {
			cfg.FontsDir = o.FontsDir
		}
		if o.ProjectFile != "" {
			cfg.ProjectFile = o.ProjectFile
		}
		if o.FontExtension != "" {
			cfg.FontExtension = o.FontExtension
		}
		if o.MatchMode != "" {
			cfg.MatchMode = o.MatchMode
		}
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	return cfg, nil
}
