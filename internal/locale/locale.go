package locale

import (
	"path"
	"strings"
)

// Locale identifies one language edition of the site.
type Locale string

const (
	English Locale = "en"
	Russian Locale = "ru"
)

// All lists the supported locales in processing order.
var All = []Locale{English, Russian}

// Parse normalizes raw ("en-US", "RU", "ru_RU") to a supported Locale.
func Parse(raw string) (Locale, bool) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	primary, _, _ := strings.Cut(strings.ReplaceAll(trimmed, "_", "-"), "-")
	switch Locale(primary) {
	case English:
		return English, true
	case Russian:
		return Russian, true
	}
	return "", false
}

// Valid reports whether l is one of the supported locales.
func (l Locale) Valid() bool {
	return l == English || l == Russian
}

func (l Locale) String() string { return string(l) }

// Pick returns english for the English edition and russian otherwise.
func Pick(l Locale, english, russian string) string {
	if l == English {
		return english
	}
	return russian
}

// DocumentRoot is the directory, relative to the site root, holding the
// legal documents of l.
func (l Locale) DocumentRoot() string {
	return Pick(l, "en/pages/terms", "pages/terms")
}

// ReferencePage is the fully migrated page the shared chrome is taken from.
func (l Locale) ReferencePage() string {
	return Pick(l, "en/pages/about.html", "pages/about.html")
}

// URLPrefix is the absolute URL path of the document root.
func (l Locale) URLPrefix() string {
	return "/" + l.DocumentRoot()
}

// DocumentURL is the site URL of slug in this locale.
func (l Locale) DocumentURL(slug DocumentSlug) string {
	return l.URLPrefix() + "/" + slug.FileName()
}

// DocumentPath is the slash-separated path of slug relative to the site root.
func (l Locale) DocumentPath(slug DocumentSlug) string {
	return path.Join(l.DocumentRoot(), slug.FileName())
}

// ScrollTopLabel is the accessible label of the scroll-to-top button.
func (l Locale) ScrollTopLabel() string {
	return Pick(l, "Back to top", "Вернуться к началу страницы")
}

// NavigationLabel is the accessible label of the documents navigation.
func (l Locale) NavigationLabel() string {
	return "Documents navigation"
}
