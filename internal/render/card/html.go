package card

import (
	"html/template"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var tags = map[Kind]atom.Atom{
	KindLink:         atom.A,
	KindArticle:      atom.Article,
	KindImageWrapper: atom.Div,
	KindImage:        atom.Img,
	KindBadge:        atom.Div,
	KindSpacer:       atom.Span,
	KindRow:          atom.Div,
	KindName:         atom.H3,
	KindPrice:        atom.Span,
	KindColorInfo:    atom.P,
	KindSalePrice:    atom.Span,
}

// WriteHTML writes the tree rooted at n as HTML.
func WriteHTML(w io.Writer, n *Node) error {
	if n == nil {
		return nil
	}
	return html.Render(w, toHTML(n))
}

// HTML renders n into a value safe to embed in html/template pages.
func HTML(n *Node) template.HTML {
	var sb strings.Builder
	_ = WriteHTML(&sb, n)
	return template.HTML(sb.String())
}

// toHTML maps a card node onto an x/net/html element. Escaping and void
// elements are left to html.Render.
func toHTML(n *Node) *html.Node {
	a, ok := tags[n.Kind]
	if !ok {
		a = atom.Div
	}

	attrs := make([]html.Attribute, 0, len(n.Attrs)+2)
	attrs = append(attrs, html.Attribute{Key: "class", Val: "shoe-card__" + string(n.Kind)})
	for _, attr := range n.Attrs {
		attrs = append(attrs, html.Attribute{Key: attr.Key, Val: attr.Value})
	}
	if css := n.Style.CSS(); css != "" {
		attrs = append(attrs, html.Attribute{Key: "style", Val: css})
	}

	el := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
	if a == atom.Img {
		return el
	}

	if n.Text != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text})
	}
	for _, c := range n.Children {
		el.AppendChild(toHTML(c))
	}
	return el
}
