// Package theme resolves the effective palette of a storefront from a named
// theme and explicit colour overrides.
package theme

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var colorValidator = validator.New()

// override returns v when it is a hex colour, otherwise "".
func override(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || colorValidator.Var(v, "hexcolor") != nil {
		return ""
	}

	return v
}

// Palette is the effective colour and typography set of a render.
type Palette struct {
	Primary          string `json:"primary" yaml:"primary"`
	Secondary        string `json:"secondary" yaml:"secondary"`
	Accent           string `json:"accent" yaml:"accent"`
	Background       string `json:"background" yaml:"background"`
	Surface          string `json:"surface" yaml:"surface"`
	Text             string `json:"text" yaml:"text"`
	SubtleText       string `json:"subtleText" yaml:"subtleText"`
	FooterBackground string `json:"footerBackground" yaml:"footerBackground"`
	FooterText       string `json:"footerText" yaml:"footerText"`
	FontFamily       string `json:"fontFamily" yaml:"fontFamily"`
}

// Theme is a named base palette.
type Theme struct {
	ID      string
	Name    string
	Palette Palette
}

// Overrides are explicit per-slot colours. Blank slots defer to the theme.
type Overrides struct {
	Primary   string
	Secondary string
	Accent    string
}

const defaultStack = `-apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif`

// Themes is the fixed theme table. The first entry is the fallback.
var Themes = []Theme{
	{ID: "modern", Name: "Modern", Palette: Palette{
		Primary: "#2563eb", Secondary: "#1e293b", Accent: "#f59e0b",
		Background: "#ffffff", Surface: "#f8fafc", Text: "#0f172a", SubtleText: "#64748b",
		FooterBackground: "#0f172a", FooterText: "#e2e8f0", FontFamily: defaultStack,
	}},
	{ID: "classic", Name: "Classic", Palette: Palette{
		Primary: "#7c2d12", Secondary: "#44403c", Accent: "#ca8a04",
		Background: "#fffbeb", Surface: "#fef3c7", Text: "#292524", SubtleText: "#78716c",
		FooterBackground: "#292524", FooterText: "#f5f5f4", FontFamily: `Georgia, "Times New Roman", serif`,
	}},
	{ID: "minimal", Name: "Minimal", Palette: Palette{
		Primary: "#111111", Secondary: "#444444", Accent: "#888888",
		Background: "#ffffff", Surface: "#fafafa", Text: "#111111", SubtleText: "#666666",
		FooterBackground: "#ffffff", FooterText: "#111111", FontFamily: `"Helvetica Neue", Arial, sans-serif`,
	}},
	{ID: "dark", Name: "Dark", Palette: Palette{
		Primary: "#8b5cf6", Secondary: "#a78bfa", Accent: "#22d3ee",
		Background: "#0b0f19", Surface: "#111827", Text: "#f9fafb", SubtleText: "#9ca3af",
		FooterBackground: "#030712", FooterText: "#d1d5db", FontFamily: defaultStack,
	}},
	{ID: "ocean", Name: "Ocean", Palette: Palette{
		Primary: "#0e7490", Secondary: "#155e75", Accent: "#f97316",
		Background: "#f0fdfa", Surface: "#ccfbf1", Text: "#134e4a", SubtleText: "#0f766e",
		FooterBackground: "#134e4a", FooterText: "#ccfbf1", FontFamily: defaultStack,
	}},
	{ID: "sunset", Name: "Sunset", Palette: Palette{
		Primary: "#ea580c", Secondary: "#9a3412", Accent: "#facc15",
		Background: "#fff7ed", Surface: "#ffedd5", Text: "#431407", SubtleText: "#9a3412",
		FooterBackground: "#431407", FooterText: "#fed7aa", FontFamily: defaultStack,
	}},
	{ID: "forest", Name: "Forest", Palette: Palette{
		Primary: "#15803d", Secondary: "#14532d", Accent: "#a16207",
		Background: "#f7fee7", Surface: "#ecfccb", Text: "#1a2e05", SubtleText: "#4d7c0f",
		FooterBackground: "#14532d", FooterText: "#dcfce7", FontFamily: defaultStack,
	}},
	{ID: "rose", Name: "Rose", Palette: Palette{
		Primary: "#e11d48", Secondary: "#881337", Accent: "#7c3aed",
		Background: "#fff1f2", Surface: "#ffe4e6", Text: "#4c0519", SubtleText: "#9f1239",
		FooterBackground: "#4c0519", FooterText: "#ffe4e6", FontFamily: defaultStack,
	}},
}

// Lookup returns the theme with id, falling back to the first entry.
func Lookup(id string) Theme {
	id = strings.TrimSpace(strings.ToLower(id))
	for _, t := range Themes {
		if t.ID == id {
			return t
		}
	}

	return Themes[0]
}

// Resolve merges overrides over the named theme. Only primary, secondary
// and accent can be overridden; each falls back to the theme on its own.
// Values that are not hex colours are ignored.
func Resolve(themeID string, o Overrides) Palette {
	p := Lookup(themeID).Palette

	if v := override(o.Primary); v != "" {
		p.Primary = v
	}
	if v := override(o.Secondary); v != "" {
		p.Secondary = v
	}
	if v := override(o.Accent); v != "" {
		p.Accent = v
	}

	return p
}

// WithFont replaces the font family when a stack is given.
func (p Palette) WithFont(stack string) Palette {
	if stack != "" {
		p.FontFamily = stack
	}

	return p
}

// Var is a CSS custom property bound to a palette slot.
type Var struct {
	Name  string
	Value string
}

// Vars lists the palette as CSS custom properties in a fixed order.
func (p Palette) Vars() []Var {
	return []Var{
		{"--primary-color", p.Primary},
		{"--secondary-color", p.Secondary},
		{"--accent-color", p.Accent},
		{"--background-color", p.Background},
		{"--surface-color", p.Surface},
		{"--text-color", p.Text},
		{"--subtle-text-color", p.SubtleText},
		{"--footer-background-color", p.FooterBackground},
		{"--footer-text-color", p.FooterText},
		{"--font-family", p.FontFamily},
	}
}

// Value returns the value of a custom property, "" when unknown.
func (p Palette) Value(name string) string {
	for _, v := range p.Vars() {
		if v.Name == name {
			return v.Value
		}
	}

	return ""
}
