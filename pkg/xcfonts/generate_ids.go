package xcfonts

import "fmt"

// GenerateIDs returns count identifiers from the configured generator.
func (x *realXCFonts) GenerateIDs(count int) ([]string, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}

	x.VerbosePrint("Generating %d identifier(s)", count)
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		ids = append(ids, x.deps.Identifier.Generate())
	}
	return ids, nil
}
