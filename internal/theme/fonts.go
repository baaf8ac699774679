package theme

import "strings"

// Font is a selectable font family.
type Font struct {
	ID    string
	Name  string
	Stack string
}

// Fonts lists the selectable fonts. All are system or widely installed
// stacks so the static bundle needs no web font files.
var Fonts = []Font{
	{ID: "system", Name: "System", Stack: defaultStack},
	{ID: "inter", Name: "Inter", Stack: `Inter, -apple-system, "Segoe UI", sans-serif`},
	{ID: "serif", Name: "Serif", Stack: `Georgia, "Times New Roman", serif`},
	{ID: "mono", Name: "Monospace", Stack: `"SFMono-Regular", Menlo, Consolas, monospace`},
	{ID: "rounded", Name: "Rounded", Stack: `"Nunito", "Varela Round", sans-serif`},
	{ID: "arabic", Name: "Arabic", Stack: `"Noto Sans Arabic", Tahoma, sans-serif`},
}

// ResolveFont returns the stack for id, or "" so the theme's font stays.
func ResolveFont(id string) string {
	id = strings.TrimSpace(strings.ToLower(id))
	for _, f := range Fonts {
		if f.ID == id {
			return f.Stack
		}
	}

	return ""
}

// ForStore resolves the palette of a store in one call.
func ForStore(themeID string, o Overrides, fontID string) Palette {
	return Resolve(themeID, o).WithFont(ResolveFont(fontID))
}
