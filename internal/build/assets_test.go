package build

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/storecraft/internal/composer"
	"github.com/conneroisu/storecraft/internal/store"
)

func TestSitemap(t *testing.T) {
	pages := []store.CustomPage{
		{Title: "About", Slug: "about", Published: true},
		{Title: "Draft", Slug: "draft"},
	}

	got := Sitemap("https://shop.test/", time.Date(2024, time.March, 5, 23, 0, 0, 0, time.UTC), pages)

	assert.Contains(t, got, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, got, "<url><loc>https://shop.test/</loc><lastmod>2024-03-05</lastmod><changefreq>weekly</changefreq><priority>1.0</priority></url>")
	assert.Contains(t, got, "<url><loc>https://shop.test/about.html</loc><lastmod>2024-03-05</lastmod><changefreq>weekly</changefreq><priority>0.8</priority></url>")
	assert.NotContains(t, got, "draft")
}

func TestRobots(t *testing.T) {
	assert.Equal(t, "User-agent: *\nAllow: /\nSitemap: https://example.com/sitemap.xml\n", Robots(""))
	assert.Equal(t, "User-agent: *\nAllow: /\nSitemap: https://shop.test/sitemap.xml\n", Robots("https://shop.test/"))
}

func TestManifest(t *testing.T) {
	cfg := store.Default()
	cfg.Branding.Name = "A Very Long Store Name"
	palette := composer.PaletteFor(cfg)

	raw, err := Manifest(cfg, palette)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &m))
	assert.Equal(t, "A Very Long Store Name", m["name"])
	assert.Equal(t, "A Very Long", m["short_name"])
	assert.Equal(t, "index.html", m["start_url"])
	assert.Equal(t, palette.Primary, m["theme_color"])
	assert.Equal(t, "ltr", m["dir"])
}

func TestScript_HandlesMarkers(t *testing.T) {
	assert.Contains(t, Script, "[data-faq-toggle]")
	assert.Contains(t, Script, "[data-whatsapp-link]")
}
