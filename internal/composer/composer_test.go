package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/storecraft/internal/sections"
	"github.com/conneroisu/storecraft/internal/store"
	"github.com/conneroisu/storecraft/internal/theme"
)

func keys(entries []Entry) []store.SectionKey {
	var out []store.SectionKey
	for _, e := range entries {
		out = append(out, e.Key)
	}
	return out
}

func scenario() *store.Configuration {
	return &store.Configuration{
		Branding:     store.Branding{Name: "Shop"},
		SectionOrder: []store.SectionKey{store.SectionHero, store.SectionFeaturedProducts, store.SectionFAQ},
		Sections: store.Sections{
			Hero:             store.SectionConfig[store.HeroData]{Enabled: true, Data: store.HeroData{Title: "Welcome"}},
			FeaturedProducts: store.SectionConfig[store.ProductSectionData]{Enabled: false},
			FAQ: store.SectionConfig[store.FAQData]{Enabled: true, Data: store.FAQData{Items: []store.FAQItem{
				{Question: "One?", Answer: "1"},
				{Question: "Two?", Answer: "2"},
			}}},
		},
		Products: []store.Product{{Name: "Lamp", Featured: true, Price: 10}},
	}
}

func TestCompose_GatesDisabledSections(t *testing.T) {
	reg := sections.NewRegistry()
	plan := Compose(scenario(), reg, theme.Lookup("").Palette)

	assert.Equal(t, []store.SectionKey{store.SectionHero, store.SectionFAQ}, keys(plan.Entries))
	assert.Nil(t, plan.Header)
	assert.Nil(t, plan.Footer)
}

func TestCompose_PreservesOrderWithoutDedup(t *testing.T) {
	cfg := scenario()
	cfg.SectionOrder = []store.SectionKey{
		store.SectionFAQ, "testimonials", store.SectionHero, store.SectionHeader, store.SectionFAQ,
	}

	plan := Compose(cfg, sections.NewRegistry(), theme.Lookup("").Palette)

	assert.Equal(t, []store.SectionKey{store.SectionFAQ, store.SectionHero, store.SectionFAQ}, keys(plan.Entries))

	var anchors []string
	for _, e := range plan.Entries {
		anchors = append(anchors, plan.Input(e).ID())
	}
	assert.Equal(t, []string{"faq", "hero", "faq-2"}, anchors)
}

func TestCompose_DefaultOrder(t *testing.T) {
	cfg := scenario()
	cfg.SectionOrder = nil
	cfg.Sections.About.Enabled = true

	plan := Compose(cfg, sections.NewRegistry(), theme.Lookup("").Palette)

	assert.Equal(t, []store.SectionKey{store.SectionHero, store.SectionAbout, store.SectionFAQ}, keys(plan.Entries))
}

func TestCompose_ResolvesVariantsWithFallback(t *testing.T) {
	cfg := scenario()
	cfg.Sections.Hero.Variant = "split"
	cfg.Sections.FAQ.Variant = "does-not-exist"
	cfg.Sections.Header = store.SectionConfig[store.HeaderData]{Enabled: true, Variant: "bogus"}
	cfg.Sections.Footer = store.SectionConfig[store.FooterData]{Enabled: true, Variant: "simple"}

	plan := Compose(cfg, sections.NewRegistry(), theme.Lookup("").Palette)

	assert.Equal(t, "split", plan.Entries[0].Module.ID)
	assert.Equal(t, "accordion", plan.Entries[1].Module.ID)
	require.NotNil(t, plan.Header)
	assert.Equal(t, "classic", plan.Header.Module.ID)
	require.NotNil(t, plan.Footer)
	assert.Equal(t, "simple", plan.Footer.Module.ID)
	assert.Len(t, plan.All(), 4)
}

func TestCompose_ProductSubsets(t *testing.T) {
	cfg := scenario()
	cfg.SectionOrder = []store.SectionKey{store.SectionFeaturedProducts, store.SectionOnSale, store.SectionProducts}
	cfg.Sections.FeaturedProducts = store.SectionConfig[store.ProductSectionData]{Enabled: true, Data: store.ProductSectionData{Title: "Featured", Limit: 1}}
	cfg.Sections.OnSale = store.SectionConfig[store.ProductSectionData]{Enabled: true}
	cfg.Sections.Products = store.SectionConfig[store.ProductSectionData]{Enabled: true}
	cfg.Products = append(cfg.Products, store.Product{Name: "Mug", Featured: true})

	plan := Compose(cfg, sections.NewRegistry(), theme.Lookup("").Palette)
	require.Len(t, plan.Entries, 3)

	featured := plan.Entries[0].Data.(store.ProductListing)
	assert.Equal(t, "Featured", featured.Title)
	require.Len(t, featured.Products, 1)
	assert.Equal(t, "Lamp", featured.Products[0].Name)

	onSale := plan.Entries[1].Data.(store.ProductListing)
	assert.Empty(t, onSale.Products, "empty subsets are still composed")

	all := plan.Entries[2].Data.(store.ProductListing)
	assert.Len(t, all.Products, 2)
}

func TestCompose_NormalizesSnapshot(t *testing.T) {
	cfg := scenario()
	plan := Compose(cfg, sections.NewRegistry(), theme.Lookup("").Palette)

	assert.Equal(t, "$", plan.Site.Currency)
	assert.Empty(t, cfg.Currency, "input is not mutated")
	assert.Equal(t, "Shop", plan.Title())
}

func TestComposePage(t *testing.T) {
	cfg := scenario()
	cfg.Sections.Header.Enabled = true
	cfg.Sections.Products.Variant = "list"
	reg := sections.NewRegistry()

	content := store.CustomPage{Title: "About", Slug: "about", Content: "Hi", MetaTitle: "About us", MetaDescription: "d", Published: true}
	plan := ComposePage(cfg, reg, theme.Lookup("").Palette, content)

	assert.Equal(t, []store.SectionKey{store.SectionPage}, keys(plan.Entries))
	assert.Equal(t, store.PageData{Title: "About", Content: "Hi"}, plan.Entries[0].Data)
	assert.NotNil(t, plan.Header)
	assert.Equal(t, "About us | Shop", plan.Title())
	assert.Equal(t, "d", plan.Description())

	listing := store.CustomPage{Title: "Shop", Slug: "shop", Type: store.PageTypeProducts, Published: true}
	plan = ComposePage(cfg, reg, theme.Lookup("").Palette, listing)

	assert.Equal(t, []store.SectionKey{store.SectionPage, store.SectionProducts}, keys(plan.Entries))
	assert.Equal(t, "list", plan.Entries[1].Module.ID)
	assert.Len(t, plan.Entries[1].Data.(store.ProductListing).Products, 1)
}

func TestDescribe(t *testing.T) {
	cfg := scenario()
	cfg.Sections.Footer.Enabled = true

	steps := Compose(cfg, sections.NewRegistry(), theme.Lookup("").Palette).Describe()

	require.Len(t, steps, 3)
	assert.Equal(t, Step{Position: 1, Key: store.SectionHero, Variant: "centered", Name: "Centered"}, steps[0])
	assert.Equal(t, 2, steps[1].Items)
	assert.Equal(t, store.SectionFooter, steps[2].Key)
}

func TestPaletteFor(t *testing.T) {
	cfg := &store.Configuration{ThemeID: "dark", Colors: store.Colors{Primary: "#222222"}, Font: "serif"}
	p := PaletteFor(cfg)

	assert.Equal(t, "#222222", p.Primary)
	assert.Equal(t, theme.Lookup("dark").Palette.Accent, p.Accent)
	assert.Contains(t, p.FontFamily, "Georgia")
}
