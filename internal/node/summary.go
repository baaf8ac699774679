package node

import (
	"strings"

	"golang.org/x/net/html"
)

// SectionSummary is the information content of one rendered section.
type SectionSummary struct {
	Key   string `json:"key"`
	Items int    `json:"items"`
}

// Summarize lists the sections below n in document order with the number
// of items each renders. Items of nested sections are not counted twice.
func Summarize(n *Node) []SectionSummary {
	var out []SectionSummary
	Walk(n, func(x *Node) bool {
		if x.Kind != ElementNode {
			return true
		}
		key, ok := x.Get(AttrSection)
		if !ok {
			return true
		}
		out = append(out, SectionSummary{Key: key, Items: countItems(x)})

		return false
	})

	return out
}

func countItems(section *Node) int {
	count := 0
	for _, c := range section.Children {
		Walk(c, func(x *Node) bool {
			if x.Kind != ElementNode {
				return true
			}
			if _, nested := x.Get(AttrSection); nested {
				return false
			}
			if _, ok := x.Get(AttrItem); ok {
				count++
			}

			return true
		})
	}

	return count
}

// Parse converts an HTML document or fragment into a node tree. Comments
// and doctype are dropped.
func Parse(src string) (*Node, error) {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, err
	}

	return convert(doc), nil
}

// SummarizeHTML is Summarize applied to serialized HTML.
func SummarizeHTML(src string) ([]SectionSummary, error) {
	tree, err := Parse(src)
	if err != nil {
		return nil, err
	}

	return Summarize(tree), nil
}

func convert(h *html.Node) *Node {
	var n *Node
	switch h.Type {
	case html.TextNode:
		return Text(h.Data)
	case html.ElementNode:
		n = &Node{Kind: ElementNode, Tag: h.Data}
		for _, a := range h.Attr {
			n.Attrs = append(n.Attrs, Attr{Key: a.Key, Val: a.Val})
		}
	case html.DocumentNode:
		n = &Node{Kind: FragmentNode}
	default:
		return nil
	}

	for c := h.FirstChild; c != nil; c = c.NextSibling {
		if child := convert(c); child != nil {
			n.Children = append(n.Children, child)
		}
	}

	return n
}
