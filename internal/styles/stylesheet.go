package styles

import (
	"strings"

	"github.com/conneroisu/storecraft/internal/store"
	"github.com/conneroisu/storecraft/internal/theme"
)

// base element rules emitted before the class table.
var base = []struct {
	Selector string
	Decls    []Decl
}{
	{"*, *::before, *::after", d("box-sizing", "border-box")},
	{"body", d("margin", "0", "font-family", "var(--font-family)", "background", "var(--background-color)", "color", "var(--text-color)", "line-height", "1.6")},
	{"img", d("max-width", "100%", "height", "auto")},
	{"a", d("color", "inherit")},
	{"[hidden]", d("display", "none !important")},
}

var responsive = []struct {
	Class string
	Decls []Decl
}{
	{"sc-hero-split", d("grid-template-columns", "1fr", "text-align", "center")},
	{"sc-about-split", d("grid-template-columns", "1fr")},
	{"sc-hero-title", d("font-size", "2rem")},
	{"sc-header-inner", d("justify-content", "center")},
	{"sc-card-row", d("flex-direction", "column")},
	{"sc-card-thumb", d("width", "100%")},
}

// Stylesheet renders the static CSS asset. It is pretty printed; the
// generator minifies it when asked.
func Stylesheet(p theme.Palette, l store.Layout) string {
	var b strings.Builder

	b.WriteString(":root {\n")
	for _, v := range Vars(p, l) {
		b.WriteString("  ")
		b.WriteString(v.Name)
		b.WriteString(": ")
		b.WriteString(v.Value)
		b.WriteString(";\n")
	}
	b.WriteString("}\n\n")

	for _, r := range base {
		writeRule(&b, r.Selector, r.Decls, "")
	}
	for _, r := range Rules {
		writeRule(&b, "."+r.Class, r.Decls, "")
	}

	b.WriteString("@media (max-width: 768px) {\n")
	for _, r := range responsive {
		writeRule(&b, "."+r.Class, r.Decls, "  ")
	}
	b.WriteString("}\n")

	return b.String()
}

func writeRule(b *strings.Builder, selector string, decls []Decl, indent string) {
	b.WriteString(indent)
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, decl := range decls {
		b.WriteString(indent)
		b.WriteString("  ")
		b.WriteString(decl.Prop)
		b.WriteString(": ")
		b.WriteString(decl.Value)
		b.WriteString(";\n")
	}
	b.WriteString(indent)
	b.WriteString("}\n\n")
}
