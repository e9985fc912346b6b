package layout

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"go.uber.org/goleak"
	"golang.org/x/net/html"

	"github.com/evera-world/legalmigrate/internal/locale"
	"github.com/evera-world/legalmigrate/internal/markup"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// siteDir returns the absolute path to testdata/site.
func siteDir(t *testing.T) string {
	t.Helper()
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("unable to determine test file location")
	}
	abs, err := filepath.Abs(filepath.Join(filepath.Dir(filename), "..", "..", "testdata", "site"))
	if err != nil {
		t.Fatalf("resolve testdata path: %v", err)
	}
	return abs
}

func readReference(t *testing.T, loc locale.Locale) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(siteDir(t), filepath.FromSlash(loc.ReferencePage())))
	if err != nil {
		t.Fatalf("reading reference page: %v", err)
	}
	return string(data)
}

func TestLoadBothLocales(t *testing.T) {
	for _, loc := range locale.All {
		frags, err := Load(siteDir(t), loc)
		if err != nil {
			t.Fatalf("Load(%s): %v", loc, err)
		}
		if frags.Locale() != loc {
			t.Errorf("Locale() = %q, want %q", frags.Locale(), loc)
		}
		for _, name := range FragmentNames {
			if frags.Get(name) == "" {
				t.Errorf("%s: fragment %s is empty", loc, name)
			}
		}
	}
}

func TestExtractFragments(t *testing.T) {
	frags, err := Extract(locale.English, []byte(readReference(t, locale.English)))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	prefixes := map[FragmentName]string{
		Analytics:         `<script type="text/javascript">`,
		ProgressIndicator: `<div id="readProgress"`,
		DecorativeA:       `<div id="nebula"`,
		DecorativeB:       `<div id="stars"`,
		Header:            `<header class="header">`,
		Overlay:           `<div id="navOverlay"`,
		Drawer:            `<aside id="navDrawer"`,
		Footer:            `<footer class="footer">`,
		ScrollButton:      `<button id="scrollTopButton"`,
	}
	for name, prefix := range prefixes {
		if got := frags.Get(name); !strings.HasPrefix(got, prefix) {
			t.Errorf("fragment %s = %q, want prefix %q", name, got, prefix)
		}
	}

	analytics := frags.Get(Analytics)
	scriptEnd := strings.Index(analytics, "</script>\n<noscript>")
	if scriptEnd < 0 {
		t.Errorf("analytics should be script then noscript joined by a newline, got %q", analytics)
	}
	if !strings.HasSuffix(analytics, "</noscript>") {
		t.Errorf("analytics should end with the noscript fallback, got %q", analytics)
	}

	if got := frags.Get(Overlay); got != `<div id="navOverlay" class="nav-overlay" hidden=""></div>` {
		t.Errorf("overlay = %q", got)
	}
	if !strings.Contains(frags.Get(ScrollButton), `aria-label="Back to top"`) {
		t.Errorf("scroll button lost its label: %q", frags.Get(ScrollButton))
	}

	ids := make(map[string]bool)
	for _, id := range frags.IDs() {
		ids[id] = true
	}
	for _, want := range []string{"readProgress", "nebula", "stars", "navToggle", "navOverlay", "navDrawer", "scrollTopButton"} {
		if !ids[want] {
			t.Errorf("IDs() missing %q", want)
		}
	}
}

func TestExtractAnalyticsWithoutNoscript(t *testing.T) {
	page := strings.Replace(readReference(t, locale.English),
		`<noscript><div><img src="https://mc.yandex.ru/watch/95000000" style="position:absolute; left:-9999px;" alt=""></div></noscript>`, "", 1)
	frags, err := Extract(locale.English, []byte(page))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if strings.Contains(frags.Get(Analytics), "noscript") {
		t.Errorf("analytics should not contain noscript: %q", frags.Get(Analytics))
	}
}

func TestExtractMissingRegion(t *testing.T) {
	page := readReference(t, locale.Russian)
	cases := []struct {
		region  FragmentName
		replace string
		with    string
	}{
		{Footer, `<footer class="footer">`, `<footer class="site-footer">`},
		{Drawer, `<aside id="navDrawer"`, `<aside id="drawer"`},
		{ScrollButton, `id="scrollTopButton"`, `id="toTop"`},
		{DecorativeB, `<div id="stars"`, `<div id="sky"`},
		{Analytics, `<script type="text/javascript">`, `<script>`},
	}
	for _, tc := range cases {
		broken := strings.Replace(page, tc.replace, tc.with, 1)
		_, err := Extract(locale.Russian, []byte(broken))
		var layoutErr *ReferenceLayoutError
		if !errors.As(err, &layoutErr) {
			t.Fatalf("%s: expected ReferenceLayoutError, got %v", tc.region, err)
		}
		if layoutErr.Region != string(tc.region) || layoutErr.Locale != locale.Russian {
			t.Errorf("%s: error = %+v", tc.region, layoutErr)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(t.TempDir(), locale.English); err == nil {
		t.Fatal("expected error for missing reference page")
	}
}

func TestNewFragmentsRejectsMissing(t *testing.T) {
	_, err := NewFragments(locale.English, map[FragmentName]string{Header: "<header></header>"})
	var layoutErr *ReferenceLayoutError
	if !errors.As(err, &layoutErr) {
		t.Fatalf("expected ReferenceLayoutError, got %v", err)
	}
	if layoutErr.Region != string(Analytics) {
		t.Errorf("Region = %q, want %q", layoutErr.Region, Analytics)
	}
}

func parseHead(t *testing.T, inner string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader("<!doctype html><html><head>" + inner + "</head><body></body></html>"))
	if err != nil {
		t.Fatalf("html.Parse: %v", err)
	}
	var head *html.Node
	markup.Walk(doc, func(n *html.Node) bool {
		if head == nil && markup.IsElement(n, "head") {
			head = n
		}
		return head == nil
	})
	if head == nil {
		t.Fatal("no head element")
	}
	return head
}

func countLinks(head *html.Node) int {
	n := 0
	for _, el := range markup.Elements(head) {
		if markup.IsElement(el, "link") {
			n++
		}
	}
	return n
}

func TestEnsureHeadLinksEmptyHead(t *testing.T) {
	head := parseHead(t, `<meta charset="utf-8">`)
	if added := EnsureHeadLinks(head); added != 5 {
		t.Fatalf("added = %d, want 5", added)
	}
	if added := EnsureHeadLinks(head); added != 0 {
		t.Fatalf("second call added = %d, want 0", added)
	}
	if got := countLinks(head); got != 5 {
		t.Fatalf("link count = %d, want 5", got)
	}
	rendered, err := markup.Render(head)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(rendered, `<link rel="stylesheet" href="/css/styles.css"/>`) {
		t.Errorf("stylesheet link missing from %s", rendered)
	}
}

func TestEnsureHeadLinksNormalizedDuplicates(t *testing.T) {
	head := parseHead(t, `
		<link href="/evera-logo-white.png" type="image/png" rel="alternate   icon">
		<link REL="icon" type="image/svg+xml" href="/assets/icons/favicon.svg">
		<link rel="stylesheet" href="/css/styles.css" media="all">`)

	if added := EnsureHeadLinks(head); added != 2 {
		t.Fatalf("added = %d, want 2 (apple-touch-icon and manifest)", added)
	}
	if got := countLinks(head); got != 5 {
		t.Fatalf("link count = %d, want 5", got)
	}
}

func TestEnsureHeadLinksDifferentAttributesAreNotDuplicates(t *testing.T) {
	head := parseHead(t, `<link rel="manifest" href="/manifest.json" crossorigin="use-credentials">`)
	if added := EnsureHeadLinks(head); added != 5 {
		t.Fatalf("added = %d, want 5", added)
	}
}

func TestEnsureHeadLinksNil(t *testing.T) {
	if added := EnsureHeadLinks(nil); added != 0 {
		t.Fatalf("added = %d, want 0", added)
	}
}
