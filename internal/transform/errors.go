package transform

import "fmt"

// StructuralError reports a document whose markup lacks a region the
// transformation depends on. Nothing is written for such a document.
type StructuralError struct {
	Region string // head, body, main or h1
	Detail string
}

func (e *StructuralError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("unexpected document structure: %s: %s", e.Region, e.Detail)
	}
	return fmt.Sprintf("unexpected document structure: no %s found", e.Region)
}
