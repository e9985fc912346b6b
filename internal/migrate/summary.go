package migrate

import (
	"github.com/evera-world/legalmigrate/internal/docset"
	"github.com/evera-world/legalmigrate/internal/transform"
)

// Status is what happened to one document.
type Status string

const (
	StatusWritten    Status = "written"
	StatusUnchanged  Status = "unchanged"
	StatusWouldWrite Status = "would-write"
	StatusSkipped    Status = "skipped"
	StatusFailed     Status = "failed"
)

// Outcome describes the processing of one document.
type Outcome struct {
	Entry       docset.Entry
	Status      Status
	Shape       transform.Shape
	AssignedIDs []string
	InputHash   string
	OutputHash  string
	Err         error
}

// Summary collects the outcomes of one run in processing order.
type Summary struct {
	RunID    string
	DryRun   bool
	Outcomes []Outcome
}

// Count returns how many documents ended with status.
func (s *Summary) Count(status Status) int {
	n := 0
	for _, o := range s.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// Pending reports whether any document was, or would have been, rewritten.
func (s *Summary) Pending() bool {
	return s.Count(StatusWritten) > 0 || s.Count(StatusWouldWrite) > 0
}

// Failed returns the outcomes of failed documents.
func (s *Summary) Failed() []Outcome {
	var out []Outcome
	for _, o := range s.Outcomes {
		if o.Status == StatusFailed {
			out = append(out, o)
		}
	}
	return out
}
