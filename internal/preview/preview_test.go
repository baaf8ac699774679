package preview

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/storecraft/internal/composer"
	"github.com/conneroisu/storecraft/internal/node"
	"github.com/conneroisu/storecraft/internal/sections"
	"github.com/conneroisu/storecraft/internal/store"
)

func plan(cfg *store.Configuration) *composer.Plan {
	return composer.Compose(cfg, sections.NewRegistry(), composer.PaletteFor(cfg))
}

func TestRender_FollowsPlanOrder(t *testing.T) {
	view := Render(plan(store.Default()))

	var got []store.SectionKey
	for _, f := range view.Fragments {
		got = append(got, f.Key)
	}

	assert.Equal(t, []store.SectionKey{
		store.SectionHeader,
		store.SectionHero,
		store.SectionFeaturedProducts,
		store.SectionOnSale,
		store.SectionAbout,
		store.SectionWhyChooseUs,
		store.SectionFAQ,
		store.SectionFooter,
	}, got)
	assert.Equal(t, "list", view.Fragments[3].Variant)
}

func TestRender_SkipsEmptySections(t *testing.T) {
	cfg := store.Default()
	cfg.Sections.FAQ.Data.Items = nil

	view := Render(plan(cfg))
	for _, f := range view.Fragments {
		assert.NotEqual(t, store.SectionFAQ, f.Key)
	}
}

func TestTree_InlinesPalette(t *testing.T) {
	cfg := store.Default()
	cfg.Colors.Primary = "#222222"

	html := node.String(Render(plan(cfg)).Tree())

	assert.Contains(t, html, "#222222")
	assert.NotContains(t, html, "var(--")
}

func TestSummary(t *testing.T) {
	summary := Render(plan(store.Default())).Summary()

	require.NotEmpty(t, summary)
	assert.Equal(t, "header", summary[0].Key)
	assert.Equal(t, node.SectionSummary{Key: "featuredProducts", Items: 2}, summary[2])
	assert.Equal(t, node.SectionSummary{Key: "faq", Items: 2}, summary[6])
}

func TestPage(t *testing.T) {
	cfg := store.Default()
	cfg.Locale = "ar"
	cfg.Branding.Favicon = "favicon.png"

	var buf bytes.Buffer
	require.NoError(t, Render(plan(cfg)).Page("/main.js", "/preview.js").Render(context.Background(), &buf))

	html := buf.String()
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html><html lang=\"ar\" dir=\"rtl\">"))
	assert.Contains(t, html, "<title>Demo Store</title>")
	assert.Contains(t, html, `<link rel="icon" href="favicon.png">`)
	assert.Less(t, strings.Index(html, `src="/main.js"`), strings.Index(html, `src="/preview.js"`))
}

func TestBody(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(plan(store.Default())).Body().Render(context.Background(), &buf))

	assert.True(t, strings.HasPrefix(buf.String(), `<div class="sc-preview-root"`))
}
