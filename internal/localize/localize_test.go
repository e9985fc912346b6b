package localize

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/evera-world/legalmigrate/internal/locale"
)

const header = `<header class="header">
      <div class="container header__inner">
        <a class="logo" href="/en/index.html">Evera</a>
        <select class="lang-switch" aria-label="Language">
          <option value="en" data-url="/en/pages/about.html" selected="">EN</option>
          <option value="ru" data-url="/pages/about.html">RU</option>
        </select>
      </div>
    </header>`

const drawer = `<aside id="navDrawer" class="nav-drawer" aria-hidden="true">
      <nav aria-label="Mobile">
        <a href="/en/pages/about.html">About</a>
        <a href="/en/pages/about.html" lang="en" hreflang="en">English</a>
        <a href="/pages/about.html" lang="ru" hreflang="ru">Русский</a>
        <a href="/de/index.html" lang="de">Deutsch</a>
      </nav>
    </aside>`

func parse(t *testing.T, s string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func TestLinksLanguageSwitch(t *testing.T) {
	for _, loc := range locale.All {
		for _, slug := range locale.Documents {
			out := Links(header, loc, slug)
			doc := parse(t, out)

			options := doc.Find("select.lang-switch option")
			if options.Length() != 2 {
				t.Fatalf("%s/%s: %d options, want 2", loc, slug, options.Length())
			}
			selected := 0
			options.Each(func(_ int, opt *goquery.Selection) {
				value := opt.AttrOr("value", "")
				target := locale.Locale(value)
				url := opt.AttrOr("data-url", "")
				if want := target.URLPrefix() + "/" + string(slug) + ".html"; url != want {
					t.Errorf("%s/%s option %s data-url = %q, want %q", loc, slug, value, url, want)
				}
				if _, ok := opt.Attr("selected"); ok {
					selected++
					if target != loc {
						t.Errorf("%s/%s: option %s selected", loc, slug, value)
					}
				}
			})
			if selected != 1 {
				t.Errorf("%s/%s: %d selected options, want 1", loc, slug, selected)
			}
		}
	}
}

func TestLinksLangAnchors(t *testing.T) {
	out := Links(drawer, locale.Russian, locale.CookiesPolicy)
	doc := parse(t, out)

	if got := doc.Find(`a[lang="en"]`).AttrOr("href", ""); got != "/en/pages/terms/cookies-policy.html" {
		t.Errorf("en link href = %q", got)
	}
	if got := doc.Find(`a[lang="ru"]`).AttrOr("href", ""); got != "/pages/terms/cookies-policy.html" {
		t.Errorf("ru link href = %q", got)
	}
	if got := doc.Find(`a[lang="de"]`).AttrOr("href", ""); got != "/de/index.html" {
		t.Errorf("unknown-locale link should be untouched, href = %q", got)
	}
	if got := doc.Find(`a:not([lang])`).AttrOr("href", ""); got != "/en/pages/about.html" {
		t.Errorf("plain link should be untouched, href = %q", got)
	}
	if got := doc.Find(`a[lang="ru"]`).AttrOr("hreflang", ""); got != "ru" {
		t.Errorf("other attributes must be preserved, hreflang = %q", got)
	}
	if !strings.HasPrefix(out, `<aside id="navDrawer" class="nav-drawer" aria-hidden="true">`) {
		t.Errorf("root element changed: %q", out[:60])
	}
}

func TestLinksDoesNotMutateInput(t *testing.T) {
	original := header
	_ = Links(original, locale.Russian, locale.AIDisclosure)
	if original != header {
		t.Fatal("input fragment was modified")
	}
	first := Links(header, locale.English, locale.AIDisclosure)
	second := Links(header, locale.English, locale.AIDisclosure)
	if first != second {
		t.Fatal("Links is not deterministic")
	}
}

func TestLinksNoRootElement(t *testing.T) {
	for _, fragment := range []string{"", "   ", "just text", "<!-- comment only -->"} {
		if got := Links(fragment, locale.English, locale.TermsOfUse); got != fragment {
			t.Errorf("Links(%q) = %q, want input unchanged", fragment, got)
		}
	}
}

func TestLinksRootIsSwitch(t *testing.T) {
	fragment := `<select class="lang-switch"><option value="en" selected="">EN</option><option value="ru">RU</option></select>`
	out := Links(fragment, locale.Russian, locale.Accessibility)
	want := `<select class="lang-switch"><option value="en" data-url="/en/pages/terms/accessibility.html">EN</option><option value="ru" data-url="/pages/terms/accessibility.html" selected="">RU</option></select>`
	if out != want {
		t.Errorf("Links() =\n%s\nwant\n%s", out, want)
	}
}
