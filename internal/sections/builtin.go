package sections

import (
	"github.com/conneroisu/storecraft/internal/registry"
	"github.com/conneroisu/storecraft/internal/store"
)

// Defaults documents the fallback variant of every built-in kind.
var Defaults = map[store.SectionKey]string{
	store.SectionHeader:           "classic",
	store.SectionFooter:           "columns",
	store.SectionHero:             "centered",
	store.SectionFeaturedProducts: "grid",
	store.SectionBestSellers:      "grid",
	store.SectionOnSale:           "grid",
	store.SectionProducts:         "grid",
	store.SectionAbout:            "story",
	store.SectionWhyChooseUs:      "cards",
	store.SectionFAQ:              "accordion",
	store.SectionPage:             "article",
}

// NewRegistry builds the registry of built-in variants. Call it once at
// startup and pass the result to every render.
func NewRegistry() *registry.Registry {
	r := registry.New()

	registerHeaders(r)
	registerHeroes(r)
	registerProducts(r)
	registerAbout(r)
	registerFeatures(r)
	registerFAQ(r)
	registerFooters(r)
	registerPages(r)

	for kind, id := range Defaults {
		if err := r.SetDefault(kind, id); err != nil {
			panic(err)
		}
	}

	return r
}
