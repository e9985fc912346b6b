package transform

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/evera-world/legalmigrate/internal/anchor"
	"github.com/evera-world/legalmigrate/internal/layout"
	"github.com/evera-world/legalmigrate/internal/markup"
)

// Ids emitted by the page skeleton itself.
const (
	heroID       = "legal-hero"
	provenanceID = "provenance"
)

// ContentModel is the classified content of a legacy document. Every node in
// it is detached from the parsed source tree.
type ContentModel struct {
	// Head is the document head with inline styles removed and the shared
	// links ensured.
	Head *html.Node
	// Title is the inner markup of the leading h1.
	Title string
	// Lead is the inner markup of the first paragraph, or empty.
	Lead string
	// Blocks are the remaining top-level elements of main, in order.
	Blocks []*html.Node
	// Provenance holds the children of the provenance section, if any.
	Provenance []*html.Node
	// AssignedIDs lists the heading ids synthesized during classification.
	AssignedIDs []string
}

// Classify builds the ContentModel of a parsed legacy document. reserved ids
// are treated as taken when synthesizing heading ids.
func Classify(doc *html.Node, reserved []string) (*ContentModel, error) {
	root := goquery.NewDocumentFromNode(doc)

	headSel := root.Find("head").First()
	if headSel.Length() == 0 {
		return nil, &StructuralError{Region: "head"}
	}
	head := markup.Clone(headSel.Get(0))
	removeElements(head, atom.Style)
	layout.EnsureHeadLinks(head)

	mainSel := root.Find("body main").First()
	if mainSel.Length() == 0 {
		return nil, &StructuralError{Region: "main"}
	}
	children := markup.Elements(mainSel.Get(0))
	if len(children) == 0 || children[0].DataAtom != atom.H1 {
		detail := "main has no element children"
		if len(children) > 0 {
			detail = "first element of main is <" + children[0].Data + ">, not <h1>"
		}
		return nil, &StructuralError{Region: "h1", Detail: detail}
	}

	title, err := markup.InnerHTML(children[0])
	if err != nil {
		return nil, err
	}
	model := &ContentModel{Head: head, Title: title}

	var lead *html.Node
	for _, child := range children[1:] {
		if lead == nil && child.DataAtom == atom.P {
			lead = child
			continue
		}
		model.Blocks = append(model.Blocks, markup.Clone(child))
	}
	if lead != nil {
		if model.Lead, err = markup.InnerHTML(lead); err != nil {
			return nil, err
		}
	}

	reg := anchor.NewRegistry(reserved...)
	reg.Reserve(heroID)
	reg.Reserve(provenanceID)
	for _, id := range markup.IDs(model.Blocks...) {
		reg.Reserve(id)
	}
	for _, block := range model.Blocks {
		markup.Walk(block, func(n *html.Node) bool {
			if !markup.IsHeading(n) {
				return true
			}
			if id, _ := markup.Attr(n, "id"); id == "" {
				id = reg.Assign(markup.Text(n))
				markup.SetAttr(n, "id", id)
				model.AssignedIDs = append(model.AssignedIDs, id)
			}
			return true
		})
	}

	model.extractProvenance()
	return model, nil
}

// extractProvenance moves the first provenance section found among the
// blocks, or among their direct children, out of the content sequence.
func (m *ContentModel) extractProvenance() {
	for i, block := range m.Blocks {
		if isProvenance(block) {
			m.Provenance = provenanceChildren(block)
			m.Blocks = append(m.Blocks[:i:i], m.Blocks[i+1:]...)
			return
		}
		for _, child := range markup.Elements(block) {
			if isProvenance(child) {
				block.RemoveChild(child)
				m.Provenance = provenanceChildren(child)
				return
			}
		}
	}
}

func isProvenance(n *html.Node) bool {
	if n.DataAtom != atom.Section {
		return false
	}
	id, _ := markup.Attr(n, "id")
	return id == provenanceID
}

// provenanceChildren detaches the element and non-blank text children of n.
func provenanceChildren(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		keep := c.Type == html.ElementNode ||
			(c.Type == html.TextNode && strings.TrimSpace(c.Data) != "")
		if keep {
			n.RemoveChild(c)
			out = append(out, c)
		}
		c = next
	}
	return out
}

func removeElements(n *html.Node, a atom.Atom) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type == html.ElementNode && c.DataAtom == a {
			n.RemoveChild(c)
		} else {
			removeElements(c, a)
		}
		c = next
	}
}
