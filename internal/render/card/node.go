package card

import (
	"strconv"
	"strings"

	"github.com/mamadbah2/shoecard/internal/render/theme"
)

// Kind names the role of a node in the card tree.
type Kind string

const (
	KindLink         Kind = "link"
	KindArticle      Kind = "article"
	KindImageWrapper Kind = "image-wrapper"
	KindImage        Kind = "image"
	KindBadge        Kind = "badge"
	KindSpacer       Kind = "spacer"
	KindRow          Kind = "row"
	KindName         Kind = "name"
	KindPrice        Kind = "price"
	KindColorInfo    Kind = "color-info"
	KindSalePrice    Kind = "sale-price"
)

// Attr is a single element attribute. Order is preserved on output.
type Attr struct {
	Key   string
	Value string
}

// Decl is one CSS declaration.
type Decl struct {
	Prop  string
	Value string
}

// Style is the visual treatment of a node. Layout only matters for HTML;
// the remaining fields are understood by every renderer.
type Style struct {
	Layout        []Decl
	Color         theme.Color
	Background    theme.Color
	FontSize      string
	FontWeight    int
	Strikethrough bool
	Size          int // spacer height in px
}

// CSS renders the style as an inline declaration list.
func (s Style) CSS() string {
	decls := make([]string, 0, len(s.Layout)+6)
	for _, d := range s.Layout {
		decls = append(decls, d.Prop+": "+d.Value)
	}
	if s.Size > 0 {
		decls = append(decls, "display: block", "height: "+strconv.Itoa(s.Size)+"px")
	}
	if s.Color.CSS != "" {
		decls = append(decls, "color: "+s.Color.CSS)
	}
	if s.Background.CSS != "" {
		decls = append(decls, "background-color: "+s.Background.CSS)
	}
	if s.FontSize != "" {
		decls = append(decls, "font-size: "+s.FontSize)
	}
	if s.FontWeight > 0 {
		decls = append(decls, "font-weight: "+strconv.Itoa(s.FontWeight))
	}
	if s.Strikethrough {
		decls = append(decls, "text-decoration: line-through")
	}
	return strings.Join(decls, "; ")
}

// Node is an element of the rendered card.
type Node struct {
	Kind     Kind
	Text     string
	Attrs    []Attr
	Style    Style
	Children []*Node
}

// Attr returns the value of the named attribute, or "".
func (n *Node) Attr(key string) string {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value
		}
	}
	return ""
}

// FindAll returns every node of the given kind in document order.
func (n *Node) FindAll(kind Kind) []*Node {
	var out []*Node
	n.walk(func(m *Node) {
		if m.Kind == kind {
			out = append(out, m)
		}
	})
	return out
}

// Find returns the first node of the given kind, or nil.
func (n *Node) Find(kind Kind) *Node {
	if all := n.FindAll(kind); len(all) > 0 {
		return all[0]
	}
	return nil
}

func (n *Node) walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		c.walk(fn)
	}
}

func el(kind Kind, style Style, children ...*Node) *Node {
	return &Node{Kind: kind, Style: style, Children: children}
}

func text(kind Kind, style Style, value string) *Node {
	return &Node{Kind: kind, Style: style, Text: value}
}
