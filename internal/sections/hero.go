package sections

import (
	"github.com/conneroisu/storecraft/internal/node"
	"github.com/conneroisu/storecraft/internal/registry"
	"github.com/conneroisu/storecraft/internal/store"
)

func heroText(data store.HeroData, titleClass string) []*node.Node {
	return []*node.Node{
		node.If(data.Title != "", el("h1", attr("class", titleClass), text(data.Title))),
		node.If(data.Subtitle != "", el("p", attr("class", "sc-hero-subtitle"), text(data.Subtitle))),
		node.If(data.ButtonText != "", link(data.ButtonLink, "sc-button", text(data.ButtonText))),
	}
}

func centeredHero(in registry.Input) *node.Node {
	data := dataAs[store.HeroData](in)
	children := append(heroText(data, "sc-hero-title"), image(data.Image, data.Title, "sc-hero-image"))

	return wrap(in, "centered", "sc-hero", children...)
}

func splitHero(in registry.Input) *node.Node {
	data := dataAs[store.HeroData](in)

	return wrap(in, "split", "sc-hero",
		el("div", attr("class", "sc-hero-split"),
			el("div", nil, heroText(data, "sc-hero-title")...),
			node.If(data.Image != "", el("div", nil, image(data.Image, data.Title, "sc-hero-image"))),
		),
	)
}

func bannerHero(in registry.Input) *node.Node {
	data := dataAs[store.HeroData](in)

	return wrap(in, "banner", "sc-hero sc-hero-banner", heroText(data, "sc-hero-title sc-hero-title-light")...)
}

func minimalHero(in registry.Input) *node.Node {
	data := dataAs[store.HeroData](in)
	data.Image = ""

	return wrap(in, "minimal", "sc-hero sc-hero-minimal", heroText(data, "sc-hero-title")...)
}

func registerHeroes(r *registry.Registry) {
	r.MustRegister(store.SectionHero, "centered", &registry.Module{
		Metadata: registry.Metadata{Name: "Centered", Description: "Centered headline with an optional image below"},
		Build:    centeredHero,
	})
	r.MustRegister(store.SectionHero, "split", &registry.Module{
		Metadata: registry.Metadata{Name: "Split", Description: "Headline beside the image"},
		Build:    splitHero,
	})
	r.MustRegister(store.SectionHero, "banner", &registry.Module{
		Metadata: registry.Metadata{Name: "Banner", Description: "Full colour banner in the primary colour"},
		Build:    bannerHero,
	})
	r.MustRegister(store.SectionHero, "minimal", &registry.Module{
		Metadata: registry.Metadata{Name: "Minimal", Description: "Headline and subtitle only"},
		Build:    minimalHero,
	})
}
