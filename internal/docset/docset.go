// Package docset resolves the fixed set of legal documents under a site root.
package docset

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"

	"github.com/evera-world/legalmigrate/internal/locale"
)

// Entry is one legal document of one locale.
type Entry struct {
	Locale  locale.Locale
	Slug    locale.DocumentSlug
	Path    string // Absolute path on disk.
	RelPath string // Slash-separated path relative to the site root.
}

func (e Entry) String() string { return e.RelPath }

// Resolve returns every document of every locale under root, locales in
// processing order and documents in canonical order. Files are not opened.
func Resolve(root string) ([]Entry, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("docset: resolve root: %w", err)
	}

	entries := make([]Entry, 0, len(locale.All)*len(locale.Documents))
	for _, loc := range locale.All {
		for _, slug := range locale.Documents {
			rel := loc.DocumentPath(slug)
			entries = append(entries, Entry{
				Locale:  loc,
				Slug:    slug,
				Path:    filepath.Join(abs, filepath.FromSlash(rel)),
				RelPath: rel,
			})
		}
	}
	return entries, nil
}

// ContentHash returns the SHA-256 hex digest of data.
func ContentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
