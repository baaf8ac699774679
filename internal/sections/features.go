package sections

import (
	"strings"

	"github.com/conneroisu/storecraft/internal/node"
	"github.com/conneroisu/storecraft/internal/registry"
	"github.com/conneroisu/storecraft/internal/store"
)

var icons = map[string]string{
	"check":  "✓",
	"star":   "★",
	"heart":  "♥",
	"truck":  "➜",
	"shield": "◆",
	"clock":  "◷",
	"gift":   "❖",
	"leaf":   "❦",
	"phone":  "☎",
}

func icon(name string) string {
	if glyph, ok := icons[strings.ToLower(strings.TrimSpace(name))]; ok {
		return glyph
	}

	return icons["check"]
}

func featureItem(f store.Feature, class string) *node.Node {
	n := el("div", attr("class", class),
		el("span", attr("class", "sc-feature-icon", "aria-hidden", "true"), text(icon(f.Icon))),
		el("div", nil,
			el("h3", attr("class", "sc-feature-title"), text(f.Title)),
			node.If(f.Description != "", el("p", attr("class", "sc-card-text"), text(f.Description))),
		),
	)
	n.Set(node.AttrItem, f.Title)

	return n
}

func featureSection(variant, container, item string) registry.BuildFunc {
	return func(in registry.Input) *node.Node {
		data := dataAs[store.WhyChooseUsData](in)
		if len(data.Features) == 0 {
			return nil
		}

		return wrap(in, variant, "",
			heading(data.Title, ""),
			el("div", attr("class", container), node.Map(data.Features, func(i int, f store.Feature) *node.Node {
				return featureItem(f, item)
			})...),
		)
	}
}

func registerFeatures(r *registry.Registry) {
	r.MustRegister(store.SectionWhyChooseUs, "cards", &registry.Module{
		Metadata: registry.Metadata{Name: "Cards", Description: "Grid of feature cards"},
		Build:    featureSection("cards", "sc-grid", "sc-feature"),
	})
	r.MustRegister(store.SectionWhyChooseUs, "list", &registry.Module{
		Metadata: registry.Metadata{Name: "List", Description: "Icon and text rows"},
		Build:    featureSection("list", "sc-list", "sc-feature-row"),
	})
}
