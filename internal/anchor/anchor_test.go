package anchor

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"Collection", "collection"},
		{"  Data Sharing  ", "data-sharing"},
		{"What we collect?", "what-we-collect"},
		{"Cookies and you", "cookies-and-you"},
		{"a - b", "a-b"},
		{"a ! b", "a-b"},
		{"--Leading and trailing--", "leading-and-trailing"},
		{"snake_case stays", "snake_case-stays"},
		{"Section 4.2: Rights", "section-42-rights"},
		{"Сбор данных", "сбор-данных"},
		{"Права пользователя (ст. 5)", "права-пользователя-ст-5"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.input); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"Privacy Policy",
		"  Multiple   spaces\tand\nnewlines ",
		"Ünïcödé Títlé",
		"Политика файлов cookie",
		"AI & You: a -- primer",
		"___",
		"2024 — revision history",
	}
	for _, in := range inputs {
		once := Slugify(in)
		if twice := Slugify(once); twice != once {
			t.Errorf("Slugify not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestRegistryAssign(t *testing.T) {
	r := NewRegistry("share", "legal-hero", "")

	if got := r.Assign("Collection"); got != "collection" {
		t.Errorf("Assign(Collection) = %q, want collection", got)
	}
	if got := r.Assign("Collection"); got != "collection-2" {
		t.Errorf("second Assign(Collection) = %q, want collection-2", got)
	}
	if got := r.Assign("Share"); got != "share-2" {
		t.Errorf("Assign(Share) = %q, want share-2 (share is reserved)", got)
	}
	if got := r.Assign("???"); got != Fallback {
		t.Errorf("Assign(???) = %q, want %q", got, Fallback)
	}
	if got := r.Assign(""); got != Fallback+"-2" {
		t.Errorf("Assign(\"\") = %q, want %q", got, Fallback+"-2")
	}
	if r.Taken("") {
		t.Error("empty id should never be reserved")
	}
}
