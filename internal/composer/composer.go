// Package composer turns a configuration into a render plan: the ordered,
// filtered list of sections with resolved template modules and their data.
package composer

import (
	"fmt"

	"github.com/conneroisu/storecraft/internal/registry"
	"github.com/conneroisu/storecraft/internal/store"
	"github.com/conneroisu/storecraft/internal/theme"
)

// Entry is one section of a plan.
type Entry struct {
	Key    store.SectionKey
	Module *registry.Module
	Data   any

	// Anchor is the document-unique element id; repeated keys get a
	// numeric suffix.
	Anchor string
}

// Plan is recomputed for every render and never persisted.
type Plan struct {
	Site    *store.Configuration
	Palette theme.Palette
	Header  *Entry
	Entries []Entry
	Footer  *Entry

	// Page is nil for the home page.
	Page *store.CustomPage
}

// Input binds an entry to the plan's site and palette.
func (p *Plan) Input(e Entry) registry.Input {
	return registry.Input{Key: e.Key, Data: e.Data, Site: p.Site, Palette: p.Palette, Anchor: e.Anchor}
}

// All returns header, body entries and footer in document order.
func (p *Plan) All() []Entry {
	out := make([]Entry, 0, len(p.Entries)+2)
	if p.Header != nil {
		out = append(out, *p.Header)
	}
	out = append(out, p.Entries...)
	if p.Footer != nil {
		out = append(out, *p.Footer)
	}

	return out
}

// Title is the document title.
func (p *Plan) Title() string {
	if p.Page != nil {
		return p.Page.DocumentTitle() + " | " + p.Site.Branding.Name
	}

	return p.Site.Branding.Name
}

// Description is the document meta description.
func (p *Plan) Description() string {
	if p.Page != nil && p.Page.MetaDescription != "" {
		return p.Page.MetaDescription
	}

	return p.Site.Branding.Description
}

// PaletteFor resolves the effective palette of a configuration.
func PaletteFor(cfg *store.Configuration) theme.Palette {
	return theme.ForStore(cfg.ThemeID, theme.Overrides{
		Primary:   cfg.Colors.Primary,
		Secondary: cfg.Colors.Secondary,
		Accent:    cfg.Colors.Accent,
	}, cfg.Font)
}

// Compose builds the home page plan. Sections follow the configured order
// exactly: disabled and unknown keys are skipped, nothing is re-sorted or
// deduplicated. Header and footer are resolved on their own and gated only
// by their enabled flags. Sections with no items are still composed.
func Compose(cfg *store.Configuration, reg *registry.Registry, palette theme.Palette) *Plan {
	site := store.Normalize(cfg)
	plan := chrome(site, reg, palette)
	seen := make(map[store.SectionKey]int)

	for _, key := range site.SectionOrder {
		if key.IsChrome() {
			continue
		}
		section, ok := site.Sections.Lookup(key)
		if !ok || !section.Enabled {
			continue
		}
		seen[key]++
		plan.Entries = append(plan.Entries, Entry{
			Key:    key,
			Module: reg.Lookup(key, section.Variant),
			Data:   sectionData(site, key, section.Data),
			Anchor: anchor(key, seen[key]),
		})
	}

	return plan
}

// ComposePage builds the plan of a custom page. Content pages render their
// prose; product listing pages add the full catalog using the variant of
// the products section.
func ComposePage(cfg *store.Configuration, reg *registry.Registry, palette theme.Palette, page store.CustomPage) *Plan {
	site := store.Normalize(cfg)
	plan := chrome(site, reg, palette)
	plan.Page = &page

	body := store.PageData{Title: page.Title}
	if page.Type != store.PageTypeProducts {
		body.Content = page.Content
	}
	plan.Entries = append(plan.Entries, Entry{
		Key:    store.SectionPage,
		Module: reg.Lookup(store.SectionPage, ""),
		Data:   body,
	})

	if page.Type == store.PageTypeProducts {
		plan.Entries = append(plan.Entries, Entry{
			Key:    store.SectionProducts,
			Module: reg.Lookup(store.SectionProducts, site.Sections.Products.Variant),
			Data: store.ProductListing{
				ProductSectionData: store.ProductSectionData{Subtitle: page.Content},
				Products:           site.ProductsFor(store.SectionProducts, 0),
			},
		})
	}

	return plan
}

// anchor is the key for its first occurrence and key-N for the Nth.
func anchor(key store.SectionKey, occurrence int) string {
	if occurrence <= 1 {
		return string(key)
	}

	return fmt.Sprintf("%s-%d", key, occurrence)
}

func chrome(site *store.Configuration, reg *registry.Registry, palette theme.Palette) *Plan {
	plan := &Plan{Site: site, Palette: palette}

	if h := site.Sections.Header; h.Enabled {
		plan.Header = &Entry{Key: store.SectionHeader, Module: reg.Lookup(store.SectionHeader, h.Variant), Data: h.Data}
	}
	if f := site.Sections.Footer; f.Enabled {
		plan.Footer = &Entry{Key: store.SectionFooter, Module: reg.Lookup(store.SectionFooter, f.Variant), Data: f.Data}
	}

	return plan
}

func sectionData(site *store.Configuration, key store.SectionKey, data any) any {
	if !key.IsProductSubset() {
		return data
	}

	cfg, _ := data.(store.ProductSectionData)

	return store.ProductListing{
		ProductSectionData: cfg,
		Products:           site.ProductsFor(key, cfg.Limit),
	}
}
