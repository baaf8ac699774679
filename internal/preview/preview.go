// Package preview renders a plan as an interactive view: every section
// tree carries inline styles and the whole page mounts as a
// templ.Component.
package preview

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/conneroisu/storecraft/internal/composer"
	"github.com/conneroisu/storecraft/internal/node"
	"github.com/conneroisu/storecraft/internal/store"
	"github.com/conneroisu/storecraft/internal/styles"
	"github.com/conneroisu/storecraft/internal/validation"
)

// Fragment is the preview of one plan entry.
type Fragment struct {
	Key     store.SectionKey
	Variant string
	Tree    *node.Node
}

// View is the preview of a whole page.
type View struct {
	Plan      *composer.Plan
	Fragments []Fragment
}

// Render builds the preview fragments of plan in document order. Entries
// whose module renders nothing contribute no fragment.
func Render(plan *composer.Plan) *View {
	v := &View{Plan: plan}
	for _, e := range plan.All() {
		tree := e.Module.Preview(plan.Input(e))
		if tree == nil {
			continue
		}
		v.Fragments = append(v.Fragments, Fragment{Key: e.Key, Variant: e.Module.ID, Tree: tree})
	}

	return v
}

// Tree returns all fragments under one root carrying the page-level
// styles the static stylesheet puts on body.
func (v *View) Tree() *node.Node {
	vars := styles.Vars(v.Plan.Palette, v.Plan.Site.Layout)
	root := node.El("div", node.A(
		"class", "sc-preview-root",
		"dir", v.Plan.Site.Direction(),
		"style", styles.Substitute("margin: 0; font-family: var(--font-family); background: var(--background-color); color: var(--text-color); line-height: 1.6; min-height: 100vh;", vars),
	))
	for _, f := range v.Fragments {
		root.Append(f.Tree)
	}

	return root
}

// Summary lists the rendered sections and their item counts.
func (v *View) Summary() []node.SectionSummary {
	return node.Summarize(v.Tree())
}

// Body is the view without a document shell, for embedding.
func (v *View) Body() templ.Component {
	tree := v.Tree()

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return node.Render(w, tree)
	})
}

// Page wraps the view in a full document that loads scripts in order.
func (v *View) Page(scripts ...string) templ.Component {
	site := v.Plan.Site

	head := node.El("head", nil,
		node.El("meta", node.A("charset", "utf-8")),
		node.El("meta", node.A("name", "viewport", "content", "width=device-width, initial-scale=1")),
		node.El("title", nil, node.Text(v.Plan.Title())),
		node.If(v.Plan.Description() != "", node.El("meta", node.A("name", "description", "content", v.Plan.Description()))),
	)
	if icon := validation.SafeImage(site.Branding.Favicon); icon != "" {
		head.Append(node.El("link", node.A("rel", "icon", "href", icon)))
	}

	body := node.El("body", node.A("style", "margin: 0;"), v.Tree())
	for _, src := range scripts {
		body.Append(node.El("script", node.A("src", src, "defer", "defer")))
	}

	doc := node.El("html", node.A("lang", site.Language().String(), "dir", site.Direction()), head, body)

	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!DOCTYPE html>"); err != nil {
			return err
		}

		return node.Render(w, doc)
	})
}
