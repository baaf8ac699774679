package sections

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/storecraft/internal/node"
	"github.com/conneroisu/storecraft/internal/registry"
	"github.com/conneroisu/storecraft/internal/store"
	"github.com/conneroisu/storecraft/internal/theme"
)

func input(key store.SectionKey, data any, cfg *store.Configuration) registry.Input {
	return registry.Input{Key: key, Data: data, Site: store.Normalize(cfg), Palette: theme.Lookup("").Palette}
}

func TestNewRegistry_Defaults(t *testing.T) {
	r := NewRegistry()

	for kind, id := range Defaults {
		assert.Equal(t, id, r.Default(kind).ID, kind)
		assert.Equal(t, id, r.Lookup(kind, "no-such-variant").ID, kind)
	}
	for _, kind := range store.AllSections {
		assert.NotEmpty(t, r.List(kind), kind)
	}
}

func TestEveryVariantRendersBothTargets(t *testing.T) {
	r := NewRegistry()
	cfg := store.Default()
	norm := store.Normalize(cfg)

	data := map[store.SectionKey]any{
		store.SectionHeader:      cfg.Sections.Header.Data,
		store.SectionFooter:      cfg.Sections.Footer.Data,
		store.SectionHero:        cfg.Sections.Hero.Data,
		store.SectionAbout:       cfg.Sections.About.Data,
		store.SectionWhyChooseUs: cfg.Sections.WhyChooseUs.Data,
		store.SectionFAQ:         cfg.Sections.FAQ.Data,
		store.SectionPage:        store.PageData{Title: "T", Content: "a\n\nb"},
	}
	for _, k := range ProductKinds {
		data[k] = store.ProductListing{Products: norm.Products}
	}

	for _, kind := range r.Kinds() {
		for _, m := range r.List(kind) {
			in := input(kind, data[kind], cfg)

			static := m.Static(in)
			require.NotEmpty(t, static, "%s/%s", kind, m.ID)

			preview := m.Preview(in)
			require.NotNil(t, preview)

			fromStatic, err := node.SummarizeHTML(static)
			require.NoError(t, err)
			assert.Equal(t, node.Summarize(preview), fromStatic, "%s/%s", kind, m.ID)
			assert.Equal(t, string(kind), fromStatic[0].Key)
		}
	}
}

func TestProductCard(t *testing.T) {
	cfg := &store.Configuration{
		Branding:  store.Branding{Name: "Shop"},
		Messaging: store.Messaging{Enabled: true, Phone: "+966 50 123 4567", Template: "Hi {productName}", Include: store.MessageFlags{ProductName: true}},
	}
	products := []store.Product{
		{ID: "a", Name: "Lamp", Price: 10, OriginalPrice: 20},
		{ID: "b", Name: "Mug", Price: 5},
	}

	html := NewRegistry().Lookup(store.SectionProducts, "grid").Static(
		input(store.SectionProducts, store.ProductListing{Products: products}, cfg))

	assert.Equal(t, 1, strings.Count(html, `class="sc-badge"`))
	assert.Contains(t, html, ">-50%<")
	assert.Contains(t, html, ">$20<")
	assert.Contains(t, html, `data-whatsapp-link="https://wa.me/966501234567?text=Hi%20Lamp"`)
	assert.Equal(t, 2, strings.Count(html, node.AttrItem+"="))
}

func TestProductCard_DisabledOrderButton(t *testing.T) {
	cfg := &store.Configuration{Messaging: store.Messaging{Enabled: true, Phone: "  "}}

	html := NewRegistry().Lookup(store.SectionOnSale, "list").Static(
		input(store.SectionOnSale, store.ProductListing{Products: []store.Product{{Name: "Lamp"}}}, cfg))

	assert.Contains(t, html, `disabled="disabled"`)
	assert.NotContains(t, html, "wa.me")
	assert.Contains(t, html, `data-item=""`)
}

func TestEmptyListsRenderNothing(t *testing.T) {
	r := NewRegistry()

	assert.Empty(t, r.Lookup(store.SectionFeaturedProducts, "grid").Static(input(store.SectionFeaturedProducts, store.ProductListing{}, nil)))
	assert.Empty(t, r.Lookup(store.SectionFAQ, "accordion").Static(input(store.SectionFAQ, store.FAQData{Title: "Q"}, nil)))
	assert.Empty(t, r.Lookup(store.SectionWhyChooseUs, "cards").Static(input(store.SectionWhyChooseUs, store.WhyChooseUsData{}, nil)))
	assert.Nil(t, r.Lookup(store.SectionFAQ, "simple").Preview(input(store.SectionFAQ, nil, nil)))
}

func TestUserTextIsEscaped(t *testing.T) {
	hero := store.HeroData{
		Title:      `<img src=x onerror=alert(1)>`,
		ButtonText: "Go",
		ButtonLink: "javascript:alert(1)",
		Image:      "javascript:alert(1)",
	}

	html := NewRegistry().Lookup(store.SectionHero, "centered").Static(input(store.SectionHero, hero, nil))

	assert.Contains(t, html, "&lt;img src=x onerror=alert(1)&gt;")
	assert.NotContains(t, html, "<img src=x")
	assert.Contains(t, html, `href="#"`)
	assert.NotContains(t, html, "javascript:")
}

func TestFAQVariants(t *testing.T) {
	r := NewRegistry()
	data := store.FAQData{Items: []store.FAQItem{{Question: "Q1", Answer: "A1"}, {Question: "Q2", Answer: "A2"}}}

	accordion := r.Lookup(store.SectionFAQ, "accordion").Static(input(store.SectionFAQ, data, nil))
	assert.Equal(t, 2, strings.Count(accordion, AttrFAQToggle+"="))
	assert.Equal(t, 2, strings.Count(accordion, `hidden="hidden"`))
	assert.Less(t, strings.Index(accordion, "Q1"), strings.Index(accordion, "Q2"))

	simple := r.Lookup(store.SectionFAQ, "simple").Static(input(store.SectionFAQ, data, nil))
	assert.NotContains(t, simple, "hidden")
	assert.Contains(t, simple, "A2")
}

func TestHeaderNavigation(t *testing.T) {
	cfg := &store.Configuration{
		Branding:   store.Branding{Name: "Shop"},
		Navigation: store.Navigation{Header: []store.Link{{Label: "Home", URL: "index.html"}}},
		Pages:      []store.CustomPage{{Title: "About", Slug: "about", Published: true, ShowInHeader: true}},
	}
	r := NewRegistry()

	classic := r.Lookup(store.SectionHeader, "classic").Tree(input(store.SectionHeader, store.HeaderData{Announcement: "Sale!"}, cfg))
	assert.Equal(t, []node.SectionSummary{{Key: "header", Items: 2}}, node.Summarize(classic))
	assert.Contains(t, node.String(classic), `href="about.html"`)
	assert.Contains(t, node.TextContent(classic), "Sale!")

	minimal := r.Lookup(store.SectionHeader, "minimal").Tree(input(store.SectionHeader, store.HeaderData{}, cfg))
	assert.Equal(t, []node.SectionSummary{{Key: "header", Items: 0}}, node.Summarize(minimal))
}

func TestFooter(t *testing.T) {
	cfg := &store.Configuration{
		Branding:  store.Branding{Name: "Shop"},
		Contact:   store.Contact{Email: "a@b.co", Social: []store.SocialLink{{Platform: "Instagram", URL: "https://instagram.com/shop"}}},
		Messaging: store.Messaging{Enabled: true, Phone: "+1 555"},
	}

	html := NewRegistry().Lookup(store.SectionFooter, "columns").Static(
		input(store.SectionFooter, store.FooterData{ShowContact: true, ShowSocial: true}, cfg))

	assert.Contains(t, html, `href="mailto:a@b.co"`)
	assert.Contains(t, html, "Instagram")
	assert.Contains(t, html, "https://wa.me/1555?text=Hello%20Shop%21")
	assert.Contains(t, html, "© Shop. All rights reserved.")
}

func TestParagraphs(t *testing.T) {
	got := node.StringAll(Paragraphs("First line\nsecond line\r\n\r\n  \n\nNext <p>"))

	assert.Equal(t,
		`<p class="sc-paragraph">First line<br>second line</p><p class="sc-paragraph">Next &lt;p&gt;</p>`,
		got)
	assert.Empty(t, Paragraphs("   \n\n  "))
}
