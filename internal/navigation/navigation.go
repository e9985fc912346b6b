// Package navigation renders the cross-document navigation list.
package navigation

import (
	"fmt"
	"html"
	"strings"

	"github.com/evera-world/legalmigrate/internal/locale"
)

// Build returns the documents navigation for loc with current marked as the
// current page. The markup is pre-indented for the hero section.
func Build(loc locale.Locale, current locale.DocumentSlug) string {
	lines := []string{
		fmt.Sprintf(`            <nav class="legal-nav" aria-label="%s">`, html.EscapeString(loc.NavigationLabel())),
		`              <ul class="legal-nav__list">`,
	}
	for _, slug := range locale.Documents {
		currentAttr := ""
		if slug == current {
			currentAttr = ` aria-current="page"`
		}
		lines = append(lines, fmt.Sprintf(`                <li><a href="%s"%s>%s</a></li>`,
			html.EscapeString(loc.DocumentURL(slug)), currentAttr, html.EscapeString(loc.Label(slug))))
	}
	lines = append(lines,
		`              </ul>`,
		`            </nav>`,
	)
	return strings.Join(lines, "\n")
}
