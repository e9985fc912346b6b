// Package localize points the language controls of a chrome fragment at the
// right edition of the current document.
package localize

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/evera-world/legalmigrate/internal/locale"
	"github.com/evera-world/legalmigrate/internal/markup"
)

// Links returns a copy of fragment in which
//   - every option of select.lang-switch targets its locale's copy of slug
//     through data-url, and only the option for loc stays selected;
//   - every a[lang] naming a known locale links to that locale's copy of slug.
//
// The fragment is returned unchanged when it has no root element.
func Links(fragment string, loc locale.Locale, slug locale.DocumentSlug) string {
	nodes, err := markup.ParseFragment(fragment)
	if err != nil {
		return fragment
	}
	var root *html.Node
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			root = n
			break
		}
	}
	if root == nil {
		return fragment
	}

	// Wrap the root so selectors also match the root element itself.
	wrapper := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	wrapper.AppendChild(root)
	doc := goquery.NewDocumentFromNode(wrapper)

	doc.Find("select.lang-switch option").Each(func(_ int, option *goquery.Selection) {
		option.RemoveAttr("selected")
		target, ok := exactLocale(option.AttrOr("value", ""))
		if !ok {
			return
		}
		option.SetAttr("data-url", target.DocumentURL(slug))
		if target == loc {
			option.SetAttr("selected", "")
		}
	})

	doc.Find("a[lang]").Each(func(_ int, link *goquery.Selection) {
		if target, ok := exactLocale(link.AttrOr("lang", "")); ok {
			link.SetAttr("href", target.DocumentURL(slug))
		}
	})

	out, err := markup.Render(root)
	if err != nil {
		return fragment
	}
	return out
}

// exactLocale accepts only the bare locale codes used by the site markup.
func exactLocale(v string) (locale.Locale, bool) {
	l := locale.Locale(v)
	return l, l.Valid()
}
