// Package node is the framework-neutral tree every section variant builds.
// Two backends consume it: the preview renderer mounts it with inline
// styles, the static generator serializes it to HTML.
package node

import "strings"

// Kind distinguishes element, text and fragment nodes.
type Kind uint8

const (
	ElementNode Kind = iota
	TextNode
	FragmentNode
)

// Data attributes used to recover section structure from either backend.
const (
	AttrSection = "data-section"
	AttrItem    = "data-item"
	AttrVariant = "data-variant"
)

// Attr is a single attribute. Order is preserved on output.
type Attr struct {
	Key string
	Val string
}

// Node is an element, a text run, or a fragment grouping children.
type Node struct {
	Kind     Kind
	Tag      string
	Attrs    []Attr
	Text     string
	Children []*Node
}

// El builds an element. Nil children are dropped so callers can inline
// conditionals.
func El(tag string, attrs []Attr, children ...*Node) *Node {
	return &Node{Kind: ElementNode, Tag: tag, Attrs: attrs, Children: compact(children)}
}

// Text builds a text node. Its content is escaped on serialization.
func Text(s string) *Node {
	return &Node{Kind: TextNode, Text: s}
}

// Fragment groups children without a wrapping element.
func Fragment(children ...*Node) *Node {
	return &Node{Kind: FragmentNode, Children: compact(children)}
}

// A builds an attribute list from alternating keys and values. Pairs with
// an empty value are skipped, except for alt which is meaningful empty.
func A(kv ...string) []Attr {
	attrs := make([]Attr, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] == "" && kv[i] != "alt" {
			continue
		}
		attrs = append(attrs, Attr{Key: kv[i], Val: kv[i+1]})
	}

	return attrs
}

// If returns n when cond holds, nil otherwise.
func If(cond bool, n *Node) *Node {
	if cond {
		return n
	}

	return nil
}

// Map builds one node per item.
func Map[T any](items []T, fn func(int, T) *Node) []*Node {
	out := make([]*Node, 0, len(items))
	for i, it := range items {
		out = append(out, fn(i, it))
	}

	return out
}

func compact(children []*Node) []*Node {
	var out []*Node
	for _, c := range children {
		if c != nil {
			out = append(out, c)
		}
	}

	return out
}

// Get returns the value of an attribute.
func (n *Node) Get(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}

	return "", false
}

// Set replaces an attribute or appends it.
func (n *Node) Set(key, val string) *Node {
	for i, a := range n.Attrs {
		if a.Key == key {
			n.Attrs[i].Val = val

			return n
		}
	}
	n.Attrs = append(n.Attrs, Attr{Key: key, Val: val})

	return n
}

// Del removes an attribute.
func (n *Node) Del(key string) *Node {
	out := n.Attrs[:0]
	for _, a := range n.Attrs {
		if a.Key != key {
			out = append(out, a)
		}
	}
	n.Attrs = out

	return n
}

// Classes splits the class attribute.
func (n *Node) Classes() []string {
	v, _ := n.Get("class")

	return strings.Fields(v)
}

// Append adds children, skipping nils.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, compact(children)...)

	return n
}

// Clone deep-copies the tree.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{Kind: n.Kind, Tag: n.Tag, Text: n.Text}
	if n.Attrs != nil {
		c.Attrs = append([]Attr(nil), n.Attrs...)
	}
	for _, ch := range n.Children {
		c.Children = append(c.Children, ch.Clone())
	}

	return c
}

// Walk visits n and its descendants depth first. Returning false from fn
// skips the node's children.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// TextContent concatenates all text below n.
func TextContent(n *Node) string {
	var b strings.Builder
	Walk(n, func(x *Node) bool {
		if x.Kind == TextNode {
			b.WriteString(x.Text)
		}

		return true
	})

	return b.String()
}
