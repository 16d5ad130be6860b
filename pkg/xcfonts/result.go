package xcfonts

import "github.com/lerenn/xcfonts/pkg/discovery"

// Status is the classification of a candidate against the manifest.
type Status string

const (
	// StatusPresent means the candidate's name already occurs in the manifest.
	StatusPresent Status = "present"
	// StatusMissing means the candidate needs adding to the manifest.
	StatusMissing Status = "missing"
)

// CandidateStatus pairs a discovered candidate with its classification.
type CandidateStatus struct {
	discovery.Candidate
	Status Status
}

// Result is the outcome of a Check, candidates in discovery order.
type Result struct {
	FontsDir    string
	ProjectFile string
	Candidates  []CandidateStatus
}

// Present returns the candidates already referenced by the manifest.
func (r Result) Present() []CandidateStatus {
	return r.filter(StatusPresent)
}

// Missing returns the candidates that need adding.
func (r Result) Missing() []CandidateStatus {
	return r.filter(StatusMissing)
}

func (r Result) filter(status Status) []CandidateStatus {
	var out []CandidateStatus
	for _, c := range r.Candidates {
		if c.Status == status {
			out = append(out, c)
		}
	}
	return out
}
