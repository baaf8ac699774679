package node

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// Escape is the only escaping function of the engine. Every text run and
// attribute value passes through it on serialization.
func Escape(s string) string {
	return html.EscapeString(s)
}

// Render writes n as HTML.
func Render(w io.Writer, n *Node) error {
	var b strings.Builder
	write(&b, n)
	_, err := io.WriteString(w, b.String())

	return err
}

// String serializes n to HTML.
func String(n *Node) string {
	var b strings.Builder
	write(&b, n)

	return b.String()
}

// StringAll serializes a list of nodes back to back.
func StringAll(nodes []*Node) string {
	var b strings.Builder
	for _, n := range nodes {
		write(&b, n)
	}

	return b.String()
}

func write(b *strings.Builder, n *Node) {
	if n == nil {
		return
	}

	switch n.Kind {
	case TextNode:
		b.WriteString(Escape(n.Text))
	case FragmentNode:
		for _, c := range n.Children {
			write(b, c)
		}
	default:
		b.WriteByte('<')
		b.WriteString(n.Tag)
		for _, a := range n.Attrs {
			b.WriteByte(' ')
			b.WriteString(a.Key)
			b.WriteString(`="`)
			b.WriteString(Escape(a.Val))
			b.WriteByte('"')
		}
		b.WriteByte('>')
		if voidElements[n.Tag] {
			return
		}
		for _, c := range n.Children {
			write(b, c)
		}
		b.WriteString("</")
		b.WriteString(n.Tag)
		b.WriteByte('>')
	}
}
