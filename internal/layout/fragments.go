// Package layout extracts the shared site chrome from a locale's reference
// page and keeps the head link declarations every page must carry.
package layout

import (
	"fmt"

	"github.com/evera-world/legalmigrate/internal/locale"
	"github.com/evera-world/legalmigrate/internal/markup"
)

// FragmentName identifies one piece of shared chrome.
type FragmentName string

const (
	Analytics         FragmentName = "analytics"
	ProgressIndicator FragmentName = "progress-indicator"
	DecorativeA       FragmentName = "decorative-background-a"
	DecorativeB       FragmentName = "decorative-background-b"
	Header            FragmentName = "header"
	Overlay           FragmentName = "overlay"
	Drawer            FragmentName = "drawer"
	Footer            FragmentName = "footer"
	ScrollButton      FragmentName = "scroll-button"
)

// FragmentNames lists every fragment in page order.
var FragmentNames = []FragmentName{
	Analytics,
	ProgressIndicator,
	DecorativeA,
	DecorativeB,
	Header,
	Overlay,
	Drawer,
	Footer,
	ScrollButton,
}

// Fragments is the chrome of one locale. It is immutable once built and may
// be shared by any number of concurrent readers.
type Fragments struct {
	locale locale.Locale
	markup map[FragmentName]string
	ids    []string
}

// NewFragments validates that every fragment is present and non-empty and
// returns the immutable set.
func NewFragments(loc locale.Locale, fragments map[FragmentName]string) (*Fragments, error) {
	f := &Fragments{
		locale: loc,
		markup: make(map[FragmentName]string, len(FragmentNames)),
	}
	for _, name := range FragmentNames {
		s, ok := fragments[name]
		if !ok || s == "" {
			return nil, &ReferenceLayoutError{Locale: loc, Region: string(name)}
		}
		f.markup[name] = s

		nodes, err := markup.ParseFragment(s)
		if err != nil {
			return nil, fmt.Errorf("parsing %s fragment: %w", name, err)
		}
		f.ids = append(f.ids, markup.IDs(nodes...)...)
	}
	return f, nil
}

// Locale returns the locale the fragments were extracted for.
func (f *Fragments) Locale() locale.Locale { return f.locale }

// Get returns the raw markup of the named fragment.
func (f *Fragments) Get(name FragmentName) string { return f.markup[name] }

// IDs returns the element ids used anywhere in the chrome.
func (f *Fragments) IDs() []string {
	out := make([]string, len(f.ids))
	copy(out, f.ids)
	return out
}

// ReferenceLayoutError reports a chrome region missing from a reference page.
type ReferenceLayoutError struct {
	Locale locale.Locale
	Region string
}

func (e *ReferenceLayoutError) Error() string {
	return fmt.Sprintf("reference layout for %s: %s region not found", e.Locale, e.Region)
}
