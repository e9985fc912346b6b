package transform

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Shape is the structural generation of a document.
type Shape string

const (
	ShapeLegacy   Shape = "legacy"
	ShapeMigrated Shape = "migrated"
)

// MigratedMarker is the class carried by pages already in the shared layout.
const MigratedMarker = "legal-page"

const doctypeMarker = "<!doctype"

// SplitPreamble separates the text preceding the document declaration from
// the rest of src. Without a declaration the preamble is empty.
func SplitPreamble(src []byte) (preamble, rest []byte) {
	idx := indexASCIIFold(src, doctypeMarker)
	if idx < 0 {
		return nil, src
	}
	return src[:idx:idx], src[idx:]
}

// indexASCIIFold finds lower-case ASCII needle in s ignoring ASCII case.
// Offsets refer to s itself.
func indexASCIIFold(s []byte, needle string) int {
	for i := 0; i+len(needle) <= len(s); i++ {
		match := true
		for j := 0; j < len(needle); j++ {
			c := s[i+j]
			if 'A' <= c && c <= 'Z' {
				c += 'a' - 'A'
			}
			if c != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// survey is what a single token pass learns about a document.
type survey struct {
	hasHead  bool
	hasBody  bool
	migrated bool
	ids      []string
}

func scan(src []byte) (*survey, error) {
	s := &survey{}
	z := html.NewTokenizer(bytes.NewReader(src))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return s, nil
			}
			return nil, z.Err()
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			switch tok.Data {
			case "head":
				s.hasHead = true
			case "body":
				s.hasBody = true
			}
			for _, a := range tok.Attr {
				switch a.Key {
				case "id":
					if a.Val != "" {
						s.ids = append(s.ids, a.Val)
					}
				case "class":
					if hasToken(a.Val, MigratedMarker) {
						s.migrated = true
					}
				}
			}
		}
	}
}

// DetectShape reports whether src (without preamble) is already migrated.
func DetectShape(src []byte) (Shape, error) {
	s, err := scan(src)
	if err != nil {
		return "", err
	}
	if s.migrated {
		return ShapeMigrated, nil
	}
	return ShapeLegacy, nil
}

func hasToken(list, token string) bool {
	for _, f := range strings.Fields(list) {
		if f == token {
			return true
		}
	}
	return false
}
