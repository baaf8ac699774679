package cmd

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/conneroisu/storecraft/internal/theme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the built-in themes and fonts",
	Long: `List the named themes with their base colours, and the font ids a store
can select. Unknown theme ids fall back to the first theme.

Examples:
  storecraft themes
  storecraft themes -o json`,
	RunE: runThemes,
}

var themesFlags *StandardFlags

func init() {
	rootCmd.AddCommand(themesCmd)

	themesFlags = AddStandardFlags(themesCmd, "output")
}

type themeRow struct {
	ID      string        `json:"id" yaml:"id"`
	Name    string        `json:"name" yaml:"name"`
	Palette theme.Palette `json:"palette" yaml:"palette"`
}

type fontRow struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Stack string `json:"stack" yaml:"stack"`
}

func runThemes(cmd *cobra.Command, _ []string) error {
	listing := struct {
		Themes []themeRow `json:"themes" yaml:"themes"`
		Fonts  []fontRow  `json:"fonts" yaml:"fonts"`
	}{}

	for _, t := range theme.Themes {
		listing.Themes = append(listing.Themes, themeRow{ID: t.ID, Name: t.Name, Palette: t.Palette})
	}
	for _, f := range theme.Fonts {
		listing.Fonts = append(listing.Fonts, fontRow{ID: f.ID, Name: f.Name, Stack: f.Stack})
	}

	return writeOutput(cmd.OutOrStdout(), themesFlags.OutputFormat, listing, func() string {
		themes := make([][]string, 0, len(listing.Themes))
		for _, t := range listing.Themes {
			themes = append(themes, []string{
				t.ID, t.Name, swatch(t.Palette.Primary), swatch(t.Palette.Secondary), swatch(t.Palette.Accent),
			})
		}
		fonts := make([][]string, 0, len(listing.Fonts))
		for _, f := range listing.Fonts {
			fonts = append(fonts, []string{f.ID, f.Name, f.Stack})
		}

		return renderTable([]string{"id", "name", "primary", "secondary", "accent"}, themes) + "\n" +
			renderTable([]string{"font", "name", "stack"}, fonts)
	})
}

// swatch renders a colour block followed by its hex value.
func swatch(hex string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("■") + " " + hex
}
