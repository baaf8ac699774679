package build

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/conneroisu/storecraft/internal/node"
	"github.com/conneroisu/storecraft/internal/sections"
	"github.com/conneroisu/storecraft/internal/store"
	"github.com/conneroisu/storecraft/internal/theme"
	"github.com/conneroisu/storecraft/internal/validation"
)

// DefaultBaseURL is used in sitemap and robots when no base URL is set.
const DefaultBaseURL = "https://example.com"

// Script is the static JS asset: one delegated click handler for FAQ
// toggles and deep-link buttons.
const Script = `(function () {
  'use strict';

  // FAQ accordion
  document.addEventListener('click', function (event) {
    var target = event.target;
    if (!target || !target.closest) {
      return;
    }

    var toggle = target.closest('[` + sections.AttrFAQToggle + `]');
    if (toggle) {
      var answer = document.getElementById(toggle.getAttribute('` + sections.AttrFAQToggle + `'));
      if (answer) {
        var opening = answer.hasAttribute('hidden');
        if (opening) {
          answer.removeAttribute('hidden');
        } else {
          answer.setAttribute('hidden', 'hidden');
        }
        toggle.setAttribute('aria-expanded', opening ? 'true' : 'false');
      }
      return;
    }

    // WhatsApp order buttons
    var link = target.closest('[data-whatsapp-link]');
    if (link) {
      event.preventDefault();
      window.open(link.getAttribute('data-whatsapp-link'), '_blank', 'noopener');
    }
  });
})();
`

type manifestIcon struct {
	Src   string `json:"src"`
	Sizes string `json:"sizes"`
}

type manifest struct {
	Name            string         `json:"name"`
	ShortName       string         `json:"short_name"`
	Description     string         `json:"description,omitempty"`
	StartURL        string         `json:"start_url"`
	Display         string         `json:"display"`
	Lang            string         `json:"lang"`
	Dir             string         `json:"dir"`
	BackgroundColor string         `json:"background_color"`
	ThemeColor      string         `json:"theme_color"`
	Icons           []manifestIcon `json:"icons,omitempty"`
}

// Manifest renders manifest.json from branding and the palette.
func Manifest(cfg *store.Configuration, p theme.Palette) (string, error) {
	m := manifest{
		Name:            cfg.Branding.Name,
		ShortName:       shortName(cfg.Branding.Name),
		Description:     cfg.Branding.Description,
		StartURL:        "index.html",
		Display:         "standalone",
		Lang:            cfg.Language().String(),
		Dir:             cfg.Direction(),
		BackgroundColor: p.Background,
		ThemeColor:      p.Primary,
	}
	if icon := validation.SafeImage(cfg.Branding.Favicon); icon != "" {
		m.Icons = []manifestIcon{{Src: icon, Sizes: "any"}}
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode manifest: %w", err)
	}

	return string(data) + "\n", nil
}

func shortName(name string) string {
	if utf8.RuneCountInString(name) <= 12 {
		return name
	}

	return strings.TrimSpace(string([]rune(name)[:12]))
}

func baseURL(raw string) string {
	if strings.TrimSpace(raw) == "" {
		raw = DefaultBaseURL
	}

	return strings.TrimSuffix(raw, "/")
}

// Robots renders robots.txt pointing at the sitemap.
func Robots(base string) string {
	return "User-agent: *\nAllow: /\nSitemap: " + baseURL(base) + "/sitemap.xml\n"
}

// Sitemap renders sitemap.xml: the home page at priority 1.0 and every
// published page at 0.8, in configuration order.
func Sitemap(base string, date time.Time, pages []store.CustomPage) string {
	root := baseURL(base)
	lastmod := date.UTC().Format("2006-01-02")

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")

	writeURL := func(loc, priority string) {
		b.WriteString("  <url>")
		b.WriteString("<loc>" + node.Escape(loc) + "</loc>")
		b.WriteString("<lastmod>" + lastmod + "</lastmod>")
		b.WriteString("<changefreq>weekly</changefreq>")
		b.WriteString("<priority>" + priority + "</priority>")
		b.WriteString("</url>\n")
	}

	writeURL(root+"/", "1.0")
	for _, p := range pages {
		if p.Published {
			writeURL(root+"/"+p.FileName(), "0.8")
		}
	}

	b.WriteString("</urlset>\n")

	return b.String()
}
