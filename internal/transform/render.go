package transform

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/evera-world/legalmigrate/internal/layout"
	"github.com/evera-world/legalmigrate/internal/locale"
	"github.com/evera-world/legalmigrate/internal/localize"
	"github.com/evera-world/legalmigrate/internal/markup"
	"github.com/evera-world/legalmigrate/internal/navigation"
)

const (
	chromeIndent = "    "
	blockIndent  = "            "
)

// render assembles the migrated page for model.
func render(preamble []byte, model *ContentModel, loc locale.Locale, slug locale.DocumentSlug, frags *layout.Fragments) ([]byte, error) {
	head, err := markup.Render(model.Head)
	if err != nil {
		return nil, fmt.Errorf("rendering head: %w", err)
	}
	content, err := renderBlocks(model.Blocks)
	if err != nil {
		return nil, fmt.Errorf("rendering content: %w", err)
	}

	header := localize.Links(frags.Get(layout.Header), loc, slug)
	drawer := localize.Links(frags.Get(layout.Drawer), loc, slug)

	lines := []string{
		`<body data-nebula="documents">`,
		markup.Indent(frags.Get(layout.Analytics), chromeIndent),
		"",
		chromeIndent + frags.Get(layout.ProgressIndicator),
		chromeIndent + frags.Get(layout.DecorativeA),
		chromeIndent + frags.Get(layout.DecorativeB),
		markup.Indent(header, chromeIndent),
		chromeIndent + frags.Get(layout.Overlay),
		markup.Indent(drawer, chromeIndent),
		"    <main>",
		fmt.Sprintf(`      <article class="legal-page" lang="%s">`, loc),
		`        <section id="legal-hero" class="section">`,
		`          <div class="container section-surface stack">`,
		"            <h1>" + model.Title + "</h1>",
		`            <p class="lead">` + model.Lead + "</p>",
		navigation.Build(loc, slug),
		"          </div>",
		"        </section>",
		"",
		`        <section class="section">`,
		`          <div class="container section-surface stack legal-content">`,
		content,
		"          </div>",
		"        </section>",
	}

	if len(model.Provenance) > 0 {
		provenance, err := renderBlocks(model.Provenance)
		if err != nil {
			return nil, fmt.Errorf("rendering provenance: %w", err)
		}
		lines = append(lines,
			"",
			`        <section id="provenance" class="section">`,
			`          <div class="container section-surface stack legal-provenance">`,
			provenance,
			"          </div>",
			"        </section>",
		)
	}

	lines = append(lines,
		"      </article>",
		"    </main>",
		markup.Indent(frags.Get(layout.Footer), chromeIndent),
		chromeIndent+scrollButton(frags.Get(layout.ScrollButton), loc),
		`    <script src="/js/app.js"></script>`,
		"  </body>",
	)

	var b strings.Builder
	b.Write(preamble)
	b.WriteString("<!doctype html>\n")
	fmt.Fprintf(&b, "<html lang=\"%s\">\n", loc)
	b.WriteString(head)
	b.WriteString("\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n</html>\n")
	return []byte(b.String()), nil
}

// renderBlocks serializes each node on its own line at block indentation.
func renderBlocks(nodes []*html.Node) (string, error) {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		s, err := markup.Render(n)
		if err != nil {
			return "", err
		}
		parts = append(parts, blockIndent+strings.ReplaceAll(s, "\n", "\n"+blockIndent))
	}
	return strings.Join(parts, "\n"), nil
}

// scrollButton swaps any known scroll-to-top label for the one of loc.
func scrollButton(button string, loc locale.Locale) string {
	want := `aria-label="` + html.EscapeString(loc.ScrollTopLabel()) + `"`
	for _, l := range locale.All {
		have := `aria-label="` + html.EscapeString(l.ScrollTopLabel()) + `"`
		if have != want {
			button = strings.ReplaceAll(button, have, want)
		}
	}
	return button
}
