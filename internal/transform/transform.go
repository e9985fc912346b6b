// Package transform rewrites one legal document into the shared site layout.
//
// A document is split into its preamble and markup, classified by shape and
// then either annotated in place (already migrated) or restructured around
// the locale's chrome (legacy).
package transform

import (
	"bytes"
	"fmt"

	"golang.org/x/net/html"

	"github.com/evera-world/legalmigrate/internal/anchor"
	"github.com/evera-world/legalmigrate/internal/layout"
	"github.com/evera-world/legalmigrate/internal/locale"
)

// Result is the outcome of transforming one document.
type Result struct {
	Output      []byte
	Shape       Shape
	AssignedIDs []string
}

// Transform returns the migrated form of src. frags must be the chrome of
// loc; it is only read. Transform performs no I/O.
func Transform(src []byte, loc locale.Locale, slug locale.DocumentSlug, frags *layout.Fragments) (*Result, error) {
	preamble, rest := SplitPreamble(src)

	s, err := scan(rest)
	if err != nil {
		return nil, fmt.Errorf("tokenizing document: %w", err)
	}
	if !s.hasHead {
		return nil, &StructuralError{Region: "head"}
	}
	if !s.hasBody {
		return nil, &StructuralError{Region: "body"}
	}

	if s.migrated {
		out, assigned, err := annotateMigrated(rest, anchor.NewRegistry(s.ids...))
		if err != nil {
			return nil, fmt.Errorf("annotating headings: %w", err)
		}
		output := make([]byte, 0, len(preamble)+len(out))
		output = append(output, preamble...)
		output = append(output, out...)
		return &Result{Output: output, Shape: ShapeMigrated, AssignedIDs: assigned}, nil
	}

	if frags == nil {
		return nil, fmt.Errorf("no layout fragments for locale %s", loc)
	}
	if frags.Locale() != loc {
		return nil, fmt.Errorf("layout fragments are for locale %s, document is %s", frags.Locale(), loc)
	}

	doc, err := html.Parse(bytes.NewReader(rest))
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	model, err := Classify(doc, frags.IDs())
	if err != nil {
		return nil, err
	}
	output, err := render(preamble, model, loc, slug, frags)
	if err != nil {
		return nil, err
	}
	return &Result{Output: output, Shape: ShapeLegacy, AssignedIDs: model.AssignedIDs}, nil
}
