package docset

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/evera-world/legalmigrate/internal/locale"
)

func TestResolve(t *testing.T) {
	root := t.TempDir()
	entries, err := Resolve(root)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if len(entries) != 14 {
		t.Fatalf("Resolve() returned %d entries, want 14", len(entries))
	}

	first, last := entries[0], entries[len(entries)-1]
	if first.Locale != locale.English || first.Slug != locale.TermsOfUse {
		t.Errorf("first entry = %s/%s", first.Locale, first.Slug)
	}
	if first.RelPath != "en/pages/terms/terms-of-use.html" {
		t.Errorf("first RelPath = %q", first.RelPath)
	}
	if last.Locale != locale.Russian || last.Slug != locale.Accessibility {
		t.Errorf("last entry = %s/%s", last.Locale, last.Slug)
	}
	if want := filepath.Join(root, "pages", "terms", "accessibility.html"); last.Path != want {
		t.Errorf("last Path = %q, want %q", last.Path, want)
	}
	for _, e := range entries {
		if !filepath.IsAbs(e.Path) {
			t.Errorf("%s: path %q is not absolute", e, e.Path)
		}
	}
}

func TestFilter(t *testing.T) {
	entries, err := Resolve(t.TempDir())
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	tests := []struct {
		name        string
		exclude     []string
		wantSkipped []string
	}{
		{"no patterns", nil, nil},
		{"base name", []string{"accessibility.html"}, []string{
			"en/pages/terms/accessibility.html",
			"pages/terms/accessibility.html",
		}},
		{"locale tree", []string{"en/**"}, []string{
			"en/pages/terms/terms-of-use.html",
			"en/pages/terms/privacy-policy.html",
			"en/pages/terms/cookies-policy.html",
			"en/pages/terms/ethics-charter.html",
			"en/pages/terms/ai-disclosure.html",
			"en/pages/terms/open-knowledge-license.html",
			"en/pages/terms/accessibility.html",
		}},
		{"anchored path", []string{"pages/terms/ai-*.html"}, []string{"pages/terms/ai-disclosure.html"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kept, skipped := Filter(entries, tt.exclude)
			var got []string
			for _, e := range skipped {
				got = append(got, e.RelPath)
			}
			if diff := cmp.Diff(tt.wantSkipped, got); diff != "" {
				t.Errorf("skipped mismatch (-want +got):\n%s", diff)
			}
			if len(kept)+len(skipped) != len(entries) {
				t.Errorf("kept %d + skipped %d != %d", len(kept), len(skipped), len(entries))
			}
		})
	}
}

func TestValidatePatterns(t *testing.T) {
	if err := ValidatePatterns([]string{"**/*.html", "en/pages/terms/a?.html"}); err != nil {
		t.Errorf("ValidatePatterns() unexpected error: %v", err)
	}
	err := ValidatePatterns([]string{"ok.html", "[unclosed"})
	if err == nil || !strings.Contains(err.Error(), "[unclosed") {
		t.Errorf("ValidatePatterns() error = %v, want mention of [unclosed", err)
	}
}

func TestContentHash(t *testing.T) {
	a := ContentHash([]byte("<p>a</p>"))
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64", len(a))
	}
	if a == ContentHash([]byte("<p>b</p>")) {
		t.Error("different content produced the same hash")
	}
}
