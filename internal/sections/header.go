package sections

import (
	"github.com/conneroisu/storecraft/internal/node"
	"github.com/conneroisu/storecraft/internal/registry"
	"github.com/conneroisu/storecraft/internal/store"
)

func brand(cfg *store.Configuration) *node.Node {
	return link("index.html", "sc-brand",
		image(cfg.Branding.Logo, cfg.Branding.Name, "sc-logo"),
		el("span", nil, text(cfg.Branding.Name)),
	)
}

func navigation(cfg *store.Configuration, data store.HeaderData) *node.Node {
	links := node.Map(cfg.HeaderLinks(), func(i int, l store.Link) *node.Node {
		n := link(l.URL, "sc-nav-link", text(l.Label))
		n.Set(node.AttrItem, l.URL)

		return n
	})
	if data.CallToAction != "" {
		links = append(links, link(data.CallToLink, "sc-button sc-button-small", text(data.CallToAction)))
	}
	if len(links) == 0 {
		return nil
	}

	return el("nav", attr("class", "sc-nav", "aria-label", "Main"), links...)
}

func header(variant string, withNav bool, innerClass string) registry.BuildFunc {
	return func(in registry.Input) *node.Node {
		cfg := site(in)
		data := dataAs[store.HeaderData](in)

		inner := el("div", attr("class", innerClass), brand(cfg))
		if withNav {
			inner.Append(navigation(cfg, data))
		}

		return el("header",
			attr("class", "sc-header", node.AttrSection, string(store.SectionHeader), node.AttrVariant, variant),
			node.If(data.Announcement != "", el("div", attr("class", "sc-announcement"), text(data.Announcement))),
			el("div", attr("class", "sc-container"), inner),
		)
	}
}

func registerHeaders(r *registry.Registry) {
	r.MustRegister(store.SectionHeader, "classic", &registry.Module{
		Metadata: registry.Metadata{Name: "Classic", Description: "Logo on the left, navigation on the right"},
		Build:    header("classic", true, "sc-header-inner"),
	})
	r.MustRegister(store.SectionHeader, "centered", &registry.Module{
		Metadata: registry.Metadata{Name: "Centered", Description: "Stacked logo and navigation"},
		Build:    header("centered", true, "sc-header-inner sc-header-centered"),
	})
	r.MustRegister(store.SectionHeader, "minimal", &registry.Module{
		Metadata: registry.Metadata{Name: "Minimal", Description: "Logo only"},
		Build:    header("minimal", false, "sc-header-inner"),
	})
}
