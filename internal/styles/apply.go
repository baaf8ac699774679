package styles

import (
	"github.com/conneroisu/storecraft/internal/node"
	"github.com/conneroisu/storecraft/internal/theme"
)

// Apply returns a copy of tree in which every element with known classes
// carries the equivalent inline style. Classes are kept so both backends
// stay addressable by the same selectors.
func Apply(tree *node.Node, vars []theme.Var) *node.Node {
	out := tree.Clone()
	node.Walk(out, func(n *node.Node) bool {
		if n.Kind != node.ElementNode {
			return true
		}
		style := Inline(n.Classes(), vars)
		if style == "" {
			return true
		}
		if existing, ok := n.Get("style"); ok && existing != "" {
			style = style + " " + existing
		}
		n.Set("style", style)

		return true
	})

	return out
}
