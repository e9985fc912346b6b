package layout

import (
	"sort"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/evera-world/legalmigrate/internal/markup"
)

// sharedHeadLinks are the icon and manifest declarations every page carries.
var sharedHeadLinks = [][]html.Attribute{
	{{Key: "rel", Val: "icon"}, {Key: "type", Val: "image/svg+xml"}, {Key: "href", Val: "/assets/icons/favicon.svg"}},
	{{Key: "rel", Val: "alternate icon"}, {Key: "type", Val: "image/png"}, {Key: "href", Val: "/evera-logo-white.png"}},
	{{Key: "rel", Val: "apple-touch-icon"}, {Key: "href", Val: "/evera-logo-white.png"}},
	{{Key: "rel", Val: "manifest"}, {Key: "href", Val: "/manifest.json"}},
}

// Stylesheet is the site stylesheet every page links.
const Stylesheet = "/css/styles.css"

// EnsureHeadLinks appends the shared link declarations missing from head and
// returns how many were added. A declaration counts as present when a link
// with the same normalized attribute set exists; the stylesheet counts as
// present whenever a stylesheet link points at Stylesheet.
func EnsureHeadLinks(head *html.Node) int {
	if head == nil {
		return 0
	}

	existing := make(map[string]bool)
	hasStylesheet := false
	markup.Walk(head, func(n *html.Node) bool {
		if n.Type != html.ElementNode || n.DataAtom != atom.Link {
			return true
		}
		existing[linkKey(n.Attr)] = true
		if isStylesheet(n) {
			hasStylesheet = true
		}
		return true
	})

	added := 0
	for _, attrs := range sharedHeadLinks {
		key := linkKey(attrs)
		if existing[key] {
			continue
		}
		head.AppendChild(newLink(attrs))
		existing[key] = true
		added++
	}
	if !hasStylesheet {
		head.AppendChild(newLink([]html.Attribute{{Key: "rel", Val: "stylesheet"}, {Key: "href", Val: Stylesheet}}))
		added++
	}
	return added
}

func isStylesheet(n *html.Node) bool {
	rel, _ := markup.Attr(n, "rel")
	href, _ := markup.Attr(n, "href")
	if href != Stylesheet {
		return false
	}
	for _, token := range strings.Fields(strings.ToLower(rel)) {
		if token == "stylesheet" {
			return true
		}
	}
	return false
}

// linkKey normalizes an attribute set: keys are lowercased and sorted, and
// token-list attributes compare by their whitespace-separated tokens.
func linkKey(attrs []html.Attribute) string {
	pairs := make([]string, 0, len(attrs))
	for _, a := range attrs {
		key := strings.ToLower(a.Key)
		val := a.Val
		if key == "rel" || key == "class" {
			val = strings.Join(strings.Fields(val), " ")
		}
		pairs = append(pairs, key+"="+val)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, "\x00")
}

func newLink(attrs []html.Attribute) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: "link", DataAtom: atom.Link}
	n.Attr = make([]html.Attribute, len(attrs))
	copy(n.Attr, attrs)
	return n
}
