package sections

import (
	"fmt"

	"github.com/conneroisu/storecraft/internal/messaging"
	"github.com/conneroisu/storecraft/internal/node"
	"github.com/conneroisu/storecraft/internal/registry"
	"github.com/conneroisu/storecraft/internal/store"
)

type cardStyle struct {
	container   string
	card        string
	imageClass  string
	description bool
}

var (
	gridCards    = cardStyle{container: "sc-grid", card: "sc-card", imageClass: "sc-card-image", description: true}
	listCards    = cardStyle{container: "sc-list", card: "sc-card sc-card-row", imageClass: "sc-card-image sc-card-thumb", description: true}
	compactCards = cardStyle{container: "sc-grid sc-grid-compact", card: "sc-card", imageClass: "sc-card-image"}
)

func orderButton(cfg *store.Configuration, p store.Product) *node.Node {
	if !cfg.Messaging.Enabled {
		return nil
	}

	href, ok := messaging.ProductLink(cfg, p)
	if !ok {
		return el("button", attr(
			"type", "button",
			"class", "sc-button sc-button-small sc-button-accent sc-button-disabled",
			"disabled", "disabled",
			"aria-disabled", "true",
		), text(cfg.Messaging.ButtonText))
	}

	return el("a", attr(
		"class", "sc-button sc-button-small sc-button-accent",
		"href", href,
		"target", "_blank",
		"rel", "noopener noreferrer",
		"data-whatsapp-link", href,
	), text(cfg.Messaging.ButtonText))
}

func productCard(cfg *store.Configuration, p store.Product, style cardStyle) *node.Node {
	var badge *node.Node
	if off := p.Discount(); off > 0 {
		badge = el("span", attr("class", "sc-badge"), text(fmt.Sprintf("-%d%%", off)))
	}

	price := el("div", nil, el("span", attr("class", "sc-price"), text(messaging.FormatPrice(cfg.Currency, p.Price))))
	if p.HasOriginalPrice() {
		price.Append(el("span", attr("class", "sc-price-original"), text(messaging.FormatPrice(cfg.Currency, p.OriginalPrice))))
	}

	card := el("article", attr("class", style.card),
		badge,
		image(p.Image, p.Name, style.imageClass),
		el("div", attr("class", "sc-card-body"),
			el("h3", attr("class", "sc-card-title"), text(p.Name)),
			node.If(style.description && p.Description != "", el("p", attr("class", "sc-card-text"), text(p.Description))),
			price,
			orderButton(cfg, p),
		),
	)
	// data-item must be present even for products without an id.
	card.Set(node.AttrItem, p.ID)

	return card
}

func productSection(variant string, style cardStyle) registry.BuildFunc {
	return func(in registry.Input) *node.Node {
		listing := dataAs[store.ProductListing](in)
		if len(listing.Products) == 0 {
			return nil
		}

		cfg := site(in)
		cards := node.Map(listing.Products, func(i int, p store.Product) *node.Node {
			return productCard(cfg, p, style)
		})

		return wrap(in, variant, "",
			heading(listing.Title, listing.Subtitle),
			el("div", attr("class", style.container), cards...),
		)
	}
}

// ProductKinds are the section kinds that render product listings.
var ProductKinds = []store.SectionKey{
	store.SectionFeaturedProducts,
	store.SectionBestSellers,
	store.SectionOnSale,
	store.SectionProducts,
}

func registerProducts(r *registry.Registry) {
	for _, kind := range ProductKinds {
		r.MustRegister(kind, "grid", &registry.Module{
			Metadata: registry.Metadata{Name: "Grid", Description: "Responsive card grid", Tags: []string{"products"}},
			Build:    productSection("grid", gridCards),
		})
		r.MustRegister(kind, "list", &registry.Module{
			Metadata: registry.Metadata{Name: "List", Description: "One product per row with a thumbnail", Tags: []string{"products"}},
			Build:    productSection("list", listCards),
		})
		r.MustRegister(kind, "compact", &registry.Module{
			Metadata: registry.Metadata{Name: "Compact", Description: "Dense grid without descriptions", Tags: []string{"products"}},
			Build:    productSection("compact", compactCards),
		})
	}
}
