// Package styles is the shared class table. The static stylesheet emits it
// as CSS rules; the preview renderer inlines the same declarations.
package styles

import (
	"regexp"
	"strings"

	"github.com/conneroisu/storecraft/internal/store"
	"github.com/conneroisu/storecraft/internal/theme"
)

// Decl is a single CSS declaration.
type Decl struct {
	Prop  string
	Value string
}

// Rule binds declarations to a class.
type Rule struct {
	Class string
	Decls []Decl
}

func d(pairs ...string) []Decl {
	out := make([]Decl, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Decl{Prop: pairs[i], Value: pairs[i+1]})
	}

	return out
}

// Rules is ordered; later rules win over earlier ones in both backends.
var Rules = []Rule{
	{"sc-container", d("max-width", "var(--container-width)", "margin", "0 auto", "padding", "0 1rem")},
	{"sc-announcement", d("background", "var(--primary-color)", "color", "#ffffff", "text-align", "center", "padding", "0.5rem", "font-size", "0.875rem")},
	{"sc-header", d("background", "var(--surface-color)", "border-bottom", "1px solid rgba(0,0,0,0.08)", "padding", "1rem 0")},
	{"sc-header-inner", d("display", "flex", "align-items", "center", "justify-content", "space-between", "gap", "1rem", "flex-wrap", "wrap")},
	{"sc-header-centered", d("flex-direction", "column", "text-align", "center")},
	{"sc-brand", d("display", "flex", "align-items", "center", "gap", "0.5rem", "font-weight", "700", "font-size", "1.25rem", "color", "var(--primary-color)", "text-decoration", "none")},
	{"sc-logo", d("height", "40px", "width", "auto")},
	{"sc-nav", d("display", "flex", "gap", "1rem", "flex-wrap", "wrap", "align-items", "center")},
	{"sc-nav-link", d("color", "var(--text-color)", "text-decoration", "none")},
	{"sc-cart", d("color", "var(--primary-color)", "font-weight", "600")},

	{"sc-section", d("padding", "3rem 0")},
	{"sc-section-title", d("font-size", "1.75rem", "margin", "0 0 0.5rem", "color", "var(--secondary-color)", "text-align", "center")},
	{"sc-section-subtitle", d("color", "var(--subtle-text-color)", "text-align", "center", "margin", "0 0 2rem")},

	{"sc-hero", d("padding", "4rem 0", "background", "var(--surface-color)", "text-align", "center")},
	{"sc-hero-split", d("display", "grid", "grid-template-columns", "1fr 1fr", "gap", "2rem", "align-items", "center", "text-align", "start")},
	{"sc-hero-banner", d("background", "var(--primary-color)", "color", "#ffffff")},
	{"sc-hero-minimal", d("background", "var(--background-color)", "padding", "2.5rem 0")},
	{"sc-hero-title", d("font-size", "2.5rem", "line-height", "1.2", "margin", "0 0 1rem", "color", "var(--secondary-color)")},
	{"sc-hero-title-light", d("color", "#ffffff")},
	{"sc-hero-subtitle", d("font-size", "1.125rem", "color", "var(--subtle-text-color)", "margin", "0 0 2rem")},
	{"sc-hero-image", d("width", "100%", "border-radius", "12px", "display", "block")},

	{"sc-button", d("display", "inline-block", "background", "var(--primary-color)", "color", "#ffffff", "padding", "0.75rem 1.5rem", "border-radius", "8px", "border", "none", "text-decoration", "none", "cursor", "pointer", "font", "inherit")},
	{"sc-button-accent", d("background", "var(--accent-color)")},
	{"sc-button-small", d("padding", "0.5rem 1rem", "font-size", "0.875rem")},
	{"sc-button-disabled", d("opacity", "0.5", "cursor", "not-allowed")},

	{"sc-grid", d("display", "grid", "grid-template-columns", "repeat(auto-fill, minmax(220px, 1fr))", "gap", "1.5rem")},
	{"sc-grid-compact", d("grid-template-columns", "repeat(auto-fill, minmax(160px, 1fr))", "gap", "1rem")},
	{"sc-list", d("display", "flex", "flex-direction", "column", "gap", "1rem")},
	{"sc-card", d("background", "var(--surface-color)", "border-radius", "12px", "overflow", "hidden", "display", "flex", "flex-direction", "column", "position", "relative")},
	{"sc-card-row", d("flex-direction", "row", "align-items", "center")},
	{"sc-card-image", d("width", "100%", "aspect-ratio", "1 / 1", "object-fit", "cover", "display", "block")},
	{"sc-card-thumb", d("width", "120px", "flex-shrink", "0")},
	{"sc-card-body", d("padding", "1rem", "display", "flex", "flex-direction", "column", "gap", "0.5rem", "flex", "1")},
	{"sc-card-title", d("font-weight", "600", "font-size", "1rem", "margin", "0")},
	{"sc-card-text", d("color", "var(--subtle-text-color)", "font-size", "0.875rem", "margin", "0")},
	{"sc-price", d("font-weight", "700", "color", "var(--primary-color)")},
	{"sc-price-original", d("text-decoration", "line-through", "color", "var(--subtle-text-color)", "font-weight", "400", "margin-inline-start", "0.5rem")},
	{"sc-badge", d("position", "absolute", "top", "0.75rem", "inset-inline-start", "0.75rem", "background", "var(--accent-color)", "color", "#ffffff", "font-size", "0.75rem", "font-weight", "700", "padding", "0.125rem 0.5rem", "border-radius", "999px")},

	{"sc-about", d("display", "grid", "gap", "2rem", "align-items", "center")},
	{"sc-about-split", d("grid-template-columns", "1fr 1fr")},
	{"sc-about-centered", d("text-align", "center", "max-width", "720px", "margin", "0 auto")},
	{"sc-about-image", d("width", "100%", "border-radius", "12px")},
	{"sc-prose", d("line-height", "1.8")},
	{"sc-paragraph", d("margin", "0 0 1rem")},

	{"sc-feature", d("background", "var(--surface-color)", "padding", "1.5rem", "border-radius", "12px", "text-align", "center")},
	{"sc-feature-row", d("display", "flex", "gap", "1rem", "text-align", "start", "align-items", "flex-start")},
	{"sc-feature-icon", d("font-size", "1.5rem", "color", "var(--accent-color)", "font-weight", "700")},
	{"sc-feature-title", d("font-weight", "600", "margin", "0.5rem 0")},

	{"sc-faq", d("max-width", "800px", "margin", "0 auto")},
	{"sc-faq-item", d("border-bottom", "1px solid rgba(0,0,0,0.1)", "padding", "1rem 0")},
	{"sc-faq-question", d("display", "flex", "justify-content", "space-between", "width", "100%", "background", "none", "border", "none", "padding", "0", "font", "inherit", "font-weight", "600", "text-align", "start", "color", "var(--text-color)", "cursor", "pointer")},
	{"sc-faq-question-static", d("cursor", "default")},
	{"sc-faq-answer", d("color", "var(--subtle-text-color)", "margin", "0.5rem 0 0")},

	{"sc-footer", d("background", "var(--footer-background-color)", "color", "var(--footer-text-color)", "padding", "3rem 0 1.5rem", "margin-top", "3rem")},
	{"sc-footer-columns", d("display", "grid", "grid-template-columns", "repeat(auto-fit, minmax(200px, 1fr))", "gap", "2rem")},
	{"sc-footer-heading", d("font-weight", "600", "margin", "0 0 0.75rem")},
	{"sc-footer-link", d("color", "var(--footer-text-color)", "text-decoration", "none", "display", "block", "margin", "0.25rem 0")},
	{"sc-footer-bottom", d("border-top", "1px solid rgba(255,255,255,0.1)", "margin-top", "2rem", "padding-top", "1rem", "text-align", "center", "font-size", "0.875rem")},

	{"sc-page", d("padding", "3rem 0", "min-height", "50vh")},
	{"sc-page-title", d("font-size", "2rem", "color", "var(--secondary-color)", "margin", "0 0 1.5rem")},
}

var index = func() map[string]int {
	m := make(map[string]int, len(Rules))
	for i, r := range Rules {
		m[r.Class] = i
	}

	return m
}()

// Known reports whether class is in the table.
func Known(class string) bool {
	_, ok := index[class]

	return ok
}

// ContainerWidth maps a layout to the container max width.
func ContainerWidth(l store.Layout) string {
	switch l {
	case store.LayoutWide:
		return "1400px"
	case store.LayoutFull:
		return "100%"
	default:
		return "1100px"
	}
}

// Vars is the full custom property set of a render: the palette plus the
// layout width.
func Vars(p theme.Palette, l store.Layout) []theme.Var {
	return append(p.Vars(), theme.Var{Name: "--container-width", Value: ContainerWidth(l)})
}

var varRef = regexp.MustCompile(`var\((--[a-z-]+)\)`)

// Substitute replaces var(--x) references with their values.
func Substitute(value string, vars []theme.Var) string {
	return varRef.ReplaceAllStringFunc(value, func(m string) string {
		name := varRef.FindStringSubmatch(m)[1]
		for _, v := range vars {
			if v.Name == name {
				return v.Value
			}
		}

		return m
	})
}

// Inline renders the declarations of classes as a style attribute value,
// in table order, with custom properties substituted.
func Inline(classes []string, vars []theme.Var) string {
	if len(classes) == 0 {
		return ""
	}

	wanted := make(map[string]bool, len(classes))
	for _, c := range classes {
		wanted[c] = true
	}

	var b strings.Builder
	for _, r := range Rules {
		if !wanted[r.Class] {
			continue
		}
		for _, decl := range r.Decls {
			b.WriteString(decl.Prop)
			b.WriteString(": ")
			b.WriteString(Substitute(decl.Value, vars))
			b.WriteString("; ")
		}
	}

	return strings.TrimSpace(b.String())
}
