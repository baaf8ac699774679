package sections

import (
	"github.com/conneroisu/storecraft/internal/node"
	"github.com/conneroisu/storecraft/internal/registry"
	"github.com/conneroisu/storecraft/internal/store"
)

func articlePage(in registry.Input) *node.Node {
	data := dataAs[store.PageData](in)

	return el("section",
		attr("class", "sc-page", node.AttrSection, string(store.SectionPage), node.AttrVariant, "article"),
		el("div", attr("class", "sc-container"),
			el("h1", attr("class", "sc-page-title"), text(data.Title)),
			node.If(data.Content != "", el("div", attr("class", "sc-prose"), Paragraphs(data.Content)...)),
		),
	)
}

func registerPages(r *registry.Registry) {
	r.MustRegister(store.SectionPage, "article", &registry.Module{
		Metadata: registry.Metadata{Name: "Article", Description: "Title and paragraphs of a custom page"},
		Build:    articlePage,
	})
}
