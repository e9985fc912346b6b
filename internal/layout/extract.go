package layout

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/evera-world/legalmigrate/internal/locale"
	"github.com/evera-world/legalmigrate/internal/markup"
)

// region maps a fragment to the selector locating it inside <body>.
type region struct {
	name     FragmentName
	selector string
}

var regions = []region{
	{ProgressIndicator, "#readProgress"},
	{DecorativeA, "#nebula"},
	{DecorativeB, "#stars"},
	{Header, "header.header"},
	{Overlay, "div#navOverlay"},
	{Drawer, "aside#navDrawer"},
	{Footer, "footer.footer"},
	{ScrollButton, "button#scrollTopButton"},
}

// Load reads the reference page of loc under root and extracts its chrome.
func Load(root string, loc locale.Locale) (*Fragments, error) {
	path := filepath.Join(root, filepath.FromSlash(loc.ReferencePage()))
	page, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading reference page %s: %w", path, err)
	}
	frags, err := Extract(loc, page)
	if err != nil {
		return nil, fmt.Errorf("extracting layout from %s: %w", path, err)
	}
	return frags, nil
}

// Extract pulls every chrome region out of a reference page. A missing
// region yields a *ReferenceLayoutError.
func Extract(loc locale.Locale, page []byte) (*Fragments, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parsing reference page: %w", err)
	}
	body := doc.Find("body").First()

	fragments := make(map[FragmentName]string, len(FragmentNames))

	analytics, err := extractAnalytics(body)
	if err != nil {
		return nil, err
	}
	if analytics == "" {
		return nil, &ReferenceLayoutError{Locale: loc, Region: string(Analytics)}
	}
	fragments[Analytics] = analytics

	for _, r := range regions {
		sel := body.Find(r.selector).First()
		if sel.Length() == 0 {
			return nil, &ReferenceLayoutError{Locale: loc, Region: string(r.name)}
		}
		outer, err := goquery.OuterHtml(sel)
		if err != nil {
			return nil, fmt.Errorf("serializing %s: %w", r.name, err)
		}
		fragments[r.name] = outer
	}

	return NewFragments(loc, fragments)
}

// extractAnalytics returns the tracking script and its optional noscript
// fallback in source order, or "" when the script is absent.
func extractAnalytics(body *goquery.Selection) (string, error) {
	script := body.Find(`script[type="text/javascript"]`).First()
	if script.Length() == 0 {
		return "", nil
	}
	parts := []*goquery.Selection{script}
	if noscript := body.Find("noscript").First(); noscript.Length() > 0 {
		if precedes(body.Get(0), noscript.Get(0), script.Get(0)) {
			parts = []*goquery.Selection{noscript, script}
		} else {
			parts = append(parts, noscript)
		}
	}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		outer, err := goquery.OuterHtml(p)
		if err != nil {
			return "", fmt.Errorf("serializing analytics %s: %w", goquery.NodeName(p), err)
		}
		out = append(out, outer)
	}
	return strings.Join(out, "\n"), nil
}

// precedes reports whether a comes before b in a document-order walk of root.
func precedes(root, a, b *html.Node) bool {
	found := false
	var first *html.Node
	markup.Walk(root, func(n *html.Node) bool {
		if found {
			return false
		}
		if n == a || n == b {
			first, found = n, true
			return false
		}
		return true
	})
	return first == a
}
