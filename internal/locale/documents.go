package locale

// DocumentSlug names one legal document. It doubles as the file stem.
type DocumentSlug string

const (
	TermsOfUse           DocumentSlug = "terms-of-use"
	PrivacyPolicy        DocumentSlug = "privacy-policy"
	CookiesPolicy        DocumentSlug = "cookies-policy"
	EthicsCharter        DocumentSlug = "ethics-charter"
	AIDisclosure         DocumentSlug = "ai-disclosure"
	OpenKnowledgeLicense DocumentSlug = "open-knowledge-license"
	Accessibility        DocumentSlug = "accessibility"
)

// Documents is the canonical document order used for navigation.
var Documents = []DocumentSlug{
	TermsOfUse,
	PrivacyPolicy,
	CookiesPolicy,
	EthicsCharter,
	AIDisclosure,
	OpenKnowledgeLicense,
	Accessibility,
}

// FileName returns the HTML file name of the document.
func (s DocumentSlug) FileName() string { return string(s) + ".html" }

func (s DocumentSlug) String() string { return string(s) }

// Known reports whether s belongs to the fixed document set.
func (s DocumentSlug) Known() bool {
	_, ok := labels[English][s]
	return ok
}

var labels = map[Locale]map[DocumentSlug]string{
	English: {
		TermsOfUse:           "Terms of Use",
		PrivacyPolicy:        "Privacy Policy",
		CookiesPolicy:        "Cookies Policy",
		EthicsCharter:        "Ethics Charter",
		AIDisclosure:         "AI Transparency",
		OpenKnowledgeLicense: "Open Knowledge License",
		Accessibility:        "Accessibility Statement",
	},
	Russian: {
		TermsOfUse:           "Пользовательское соглашение",
		PrivacyPolicy:        "Политика конфиденциальности",
		CookiesPolicy:        "Политика файлов cookie",
		EthicsCharter:        "Этическая хартия",
		AIDisclosure:         "Прозрачность ИИ",
		OpenKnowledgeLicense: "Лицензия открытого знания",
		Accessibility:        "Заявление о доступности",
	},
}

// Label returns the human-readable name of slug in locale l.
func (l Locale) Label(slug DocumentSlug) string {
	return labels[l][slug]
}
