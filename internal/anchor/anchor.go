// Package anchor turns heading text into URL-safe fragment identifiers.
package anchor

import (
	"strconv"
	"strings"
	"unicode"
)

// Fallback is used when a heading produces an empty slug.
const Fallback = "section"

// Slugify converts text into a lowercase, hyphen-separated identifier.
// Whitespace runs (including non-breaking spaces) become a single hyphen,
// runes other than letters, numbers, '_' and '-' are dropped, and hyphens
// are collapsed and trimmed. Slugify(Slugify(s)) == Slugify(s).
func Slugify(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))

	var b strings.Builder
	b.Grow(len(text))
	pendingHyphen := false
	for _, r := range text {
		switch {
		case unicode.IsSpace(r) || r == '-':
			pendingHyphen = true
		case r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Registry hands out ids that are unique within one page.
type Registry struct {
	taken map[string]struct{}
}

// NewRegistry creates a Registry that already considers reserved ids taken.
func NewRegistry(reserved ...string) *Registry {
	r := &Registry{taken: make(map[string]struct{}, len(reserved))}
	for _, id := range reserved {
		r.Reserve(id)
	}
	return r
}

// Reserve marks id as used. Empty ids are ignored.
func (r *Registry) Reserve(id string) {
	if id == "" {
		return
	}
	r.taken[id] = struct{}{}
}

// Taken reports whether id is already in use.
func (r *Registry) Taken(id string) bool {
	_, ok := r.taken[id]
	return ok
}

// Assign slugifies text and returns a fresh id, suffixing -2, -3, ... when
// the slug is already taken.
func (r *Registry) Assign(text string) string {
	base := Slugify(text)
	if base == "" {
		base = Fallback
	}
	id := base
	for n := 2; r.Taken(id); n++ {
		id = base + "-" + strconv.Itoa(n)
	}
	r.Reserve(id)
	return id
}
