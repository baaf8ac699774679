package sections

import (
	"github.com/conneroisu/storecraft/internal/node"
	"github.com/conneroisu/storecraft/internal/registry"
	"github.com/conneroisu/storecraft/internal/store"
)

func aboutBody(data store.AboutData) *node.Node {
	return el("div", attr("class", "sc-prose"),
		node.If(data.Title != "", el("h2", attr("class", "sc-section-title"), text(data.Title))),
		node.Fragment(Paragraphs(data.Content)...),
	)
}

func storyAbout(in registry.Input) *node.Node {
	data := dataAs[store.AboutData](in)

	return wrap(in, "story", "",
		el("div", attr("class", "sc-about"),
			aboutBody(data),
			image(data.Image, data.Title, "sc-about-image"),
		),
	)
}

func splitAbout(in registry.Input) *node.Node {
	data := dataAs[store.AboutData](in)

	class := "sc-about"
	if image(data.Image, "", "") != nil {
		class = "sc-about sc-about-split"
	}

	return wrap(in, "split", "",
		el("div", attr("class", class),
			image(data.Image, data.Title, "sc-about-image"),
			aboutBody(data),
		),
	)
}

func centeredAbout(in registry.Input) *node.Node {
	data := dataAs[store.AboutData](in)

	return wrap(in, "centered", "",
		el("div", attr("class", "sc-about-centered"),
			image(data.Image, data.Title, "sc-about-image"),
			aboutBody(data),
		),
	)
}

func registerAbout(r *registry.Registry) {
	r.MustRegister(store.SectionAbout, "story", &registry.Module{
		Metadata: registry.Metadata{Name: "Story", Description: "Text followed by an optional image"},
		Build:    storyAbout,
	})
	r.MustRegister(store.SectionAbout, "split", &registry.Module{
		Metadata: registry.Metadata{Name: "Image left", Description: "Image beside the text"},
		Build:    splitAbout,
	})
	r.MustRegister(store.SectionAbout, "centered", &registry.Module{
		Metadata: registry.Metadata{Name: "Centered", Description: "Narrow centered column"},
		Build:    centeredAbout,
	})
}
