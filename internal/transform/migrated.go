package transform

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/evera-world/legalmigrate/internal/anchor"
)

// Containers whose h2/h3 headings must carry ids on migrated pages.
var idContainers = []string{"legal-content", "legal-provenance"}

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "keygen": true, "link": true,
	"meta": true, "param": true, "source": true, "track": true, "wbr": true,
}

type openElement struct {
	name      string
	container bool
}

// pendingHeading buffers an id-less heading until its text is known.
type pendingHeading struct {
	name  string
	start []byte
	body  bytes.Buffer
	text  strings.Builder
	depth int
}

// annotateMigrated copies src token by token, inserting an id attribute into
// every id-less h2/h3 inside an id container. Bytes of every other token are
// copied unchanged.
func annotateMigrated(src []byte, reg *anchor.Registry) ([]byte, []string, error) {
	var (
		out        bytes.Buffer
		stack      []openElement
		containers int
		pending    *pendingHeading
		assigned   []string
	)
	out.Grow(len(src) + 64)

	flush := func() {
		id := reg.Assign(pending.text.String())
		assigned = append(assigned, id)
		out.Write(insertID(pending.start, id))
		out.Write(pending.body.Bytes())
		pending = nil
	}

	z := html.NewTokenizer(bytes.NewReader(src))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if !errors.Is(z.Err(), io.EOF) {
				return nil, nil, z.Err()
			}
			if pending != nil {
				flush()
			}
			return out.Bytes(), assigned, nil
		}

		// Token lower-cases names inside the tokenizer buffer, so copy first.
		raw := append([]byte(nil), z.Raw()...)
		tok := z.Token()

		if pending != nil {
			pending.body.Write(raw)
			switch {
			case tt == html.TextToken:
				pending.text.WriteString(tok.Data)
			case tt == html.StartTagToken && tok.Data == pending.name:
				pending.depth++
			case tt == html.EndTagToken && tok.Data == pending.name:
				if pending.depth == 0 {
					flush()
				} else {
					pending.depth--
				}
			}
			continue
		}

		switch tt {
		case html.StartTagToken:
			if containers > 0 && (tok.Data == "h2" || tok.Data == "h3") && !hasID(tok.Attr) {
				pending = &pendingHeading{name: tok.Data, start: raw}
				continue
			}
			out.Write(raw)
			if voidElements[tok.Data] {
				continue
			}
			el := openElement{name: tok.Data, container: isIDContainer(tok.Attr)}
			if el.container {
				containers++
			}
			stack = append(stack, el)
		case html.EndTagToken:
			out.Write(raw)
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i].name != tok.Data {
					continue
				}
				for _, el := range stack[i:] {
					if el.container {
						containers--
					}
				}
				stack = stack[:i]
				break
			}
		default:
			out.Write(raw)
		}
	}
}

func hasID(attrs []html.Attribute) bool {
	for _, a := range attrs {
		if a.Key == "id" && a.Val != "" {
			return true
		}
	}
	return false
}

func isIDContainer(attrs []html.Attribute) bool {
	for _, a := range attrs {
		if a.Key != "class" {
			continue
		}
		for _, c := range idContainers {
			if hasToken(a.Val, c) {
				return true
			}
		}
	}
	return false
}

// insertID adds id to a raw start tag, replacing an empty id attribute when
// the tag has one.
func insertID(start []byte, id string) []byte {
	attr := ` id="` + id + `"`
	if from, to, ok := idAttrSpan(start); ok {
		var b bytes.Buffer
		b.Write(start[:from])
		b.WriteString(attr)
		b.Write(start[to:])
		return b.Bytes()
	}
	end := bytes.LastIndexByte(start, '>')
	if end < 0 {
		end = len(start)
	}
	if end > 0 && start[end-1] == '/' {
		end--
	}
	var b bytes.Buffer
	b.Write(start[:end])
	b.WriteString(attr)
	b.Write(start[end:])
	return b.Bytes()
}

// idAttrSpan locates the first id attribute of a raw start tag, including the
// whitespace before it. Quoted values are skipped whole.
func idAttrSpan(tag []byte) (from, to int, ok bool) {
	n := len(tag)
	i := 0
	if i < n && tag[i] == '<' {
		i++
	}
	for i < n && !isTagSpace(tag[i]) && tag[i] != '/' && tag[i] != '>' {
		i++
	}
	for i < n {
		lead := i
		for i < n && (isTagSpace(tag[i]) || tag[i] == '/') {
			i++
		}
		if i >= n || tag[i] == '>' {
			return 0, 0, false
		}
		nameStart := i
		for i < n && !isTagSpace(tag[i]) && tag[i] != '/' && tag[i] != '>' && tag[i] != '=' {
			i++
		}
		name := tag[nameStart:i]
		// Stray "=".
		if len(name) == 0 {
			i++
			continue
		}
		j := i
		for j < n && isTagSpace(tag[j]) {
			j++
		}
		if j < n && tag[j] == '=' {
			j++
			for j < n && isTagSpace(tag[j]) {
				j++
			}
			switch {
			case j < n && (tag[j] == '"' || tag[j] == '\''):
				q := tag[j]
				j++
				for j < n && tag[j] != q {
					j++
				}
				if j < n {
					j++
				}
			default:
				for j < n && !isTagSpace(tag[j]) && tag[j] != '>' {
					j++
				}
			}
			i = j
		}
		if bytes.EqualFold(name, []byte("id")) {
			return lead, i, true
		}
	}
	return 0, 0, false
}

func isTagSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
