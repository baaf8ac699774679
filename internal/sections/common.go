// Package sections holds the built-in variants of every section kind.
// Each variant is a single tree builder; the registry derives the preview
// and static renderers from it.
package sections

import (
	"regexp"
	"strings"

	"github.com/conneroisu/storecraft/internal/node"
	"github.com/conneroisu/storecraft/internal/registry"
	"github.com/conneroisu/storecraft/internal/store"
	"github.com/conneroisu/storecraft/internal/validation"
)

var (
	el   = node.El
	text = node.Text
	attr = node.A
)

// site never returns nil so builders can read configuration freely.
func site(in registry.Input) *store.Configuration {
	if in.Site == nil {
		return store.Normalize(nil)
	}

	return in.Site
}

// wrap builds the outer section element shared by every body section.
func wrap(in registry.Input, variant, class string, children ...*node.Node) *node.Node {
	return el("section",
		attr(
			"id", in.ID(),
			"class", strings.TrimSpace("sc-section "+class),
			node.AttrSection, string(in.Key),
			node.AttrVariant, variant,
		),
		el("div", attr("class", "sc-container"), children...),
	)
}

func heading(title, subtitle string) *node.Node {
	return node.Fragment(
		node.If(title != "", el("h2", attr("class", "sc-section-title"), text(title))),
		node.If(subtitle != "", el("p", attr("class", "sc-section-subtitle"), text(subtitle))),
	)
}

func image(src, alt, class string) *node.Node {
	src = validation.SafeImage(src)
	if src == "" {
		return nil
	}

	return el("img", attr("class", class, "src", src, "alt", alt, "loading", "lazy"))
}

func link(href, class string, children ...*node.Node) *node.Node {
	return el("a", attr("class", class, "href", validation.SafeHref(href)), children...)
}

var blankLine = regexp.MustCompile(`\n[ \t\r]*\n`)

// Paragraphs splits prose on blank lines. Single line breaks inside a
// paragraph become <br>.
func Paragraphs(content string) []*node.Node {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	var out []*node.Node
	for _, block := range blankLine.Split(content, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		p := el("p", attr("class", "sc-paragraph"))
		for i, line := range strings.Split(block, "\n") {
			if i > 0 {
				p.Append(el("br", nil))
			}
			p.Append(text(strings.TrimSpace(line)))
		}
		out = append(out, p)
	}

	return out
}

func dataAs[T any](in registry.Input) T {
	v, _ := in.Data.(T)

	return v
}
