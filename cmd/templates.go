package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/conneroisu/storecraft/internal/registry"
	"github.com/conneroisu/storecraft/internal/sections"
	"github.com/conneroisu/storecraft/internal/store"
)

var templatesCmd = &cobra.Command{
	Use:     "templates [section]",
	Aliases: []string{"t"},
	Short:   "List the variants available for each section",
	Long: `List the registered section variants. The first variant of each
section is its default. Pass a section key to list only its variants.

Examples:
  storecraft templates           # Every section
  storecraft templates hero      # Hero variants
  storecraft templates -o yaml   # As YAML`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTemplates,
}

var templatesFlags *StandardFlags

func init() {
	rootCmd.AddCommand(templatesCmd)

	templatesFlags = AddStandardFlags(templatesCmd, "output")
}

type templateRow struct {
	Section     store.SectionKey `json:"section" yaml:"section"`
	Variant     string           `json:"variant" yaml:"variant"`
	Name        string           `json:"name" yaml:"name"`
	Description string           `json:"description" yaml:"description"`
	Default     bool             `json:"default" yaml:"default"`
}

func runTemplates(cmd *cobra.Command, args []string) error {
	var only store.SectionKey
	if len(args) == 1 {
		only = store.SectionKey(args[0])
	}

	rows := listTemplates(sections.NewRegistry(), only)

	return writeOutput(cmd.OutOrStdout(), templatesFlags.OutputFormat, rows, func() string {
		table := make([][]string, 0, len(rows))
		for _, r := range rows {
			name := r.Name
			if r.Default {
				name += " " + mutedStyle.Render("(default)")
			}
			table = append(table, []string{string(r.Section), r.Variant, name, r.Description})
		}

		return renderTable([]string{"section", "variant", "name", "description"}, table)
	})
}

func listTemplates(reg *registry.Registry, only store.SectionKey) []templateRow {
	var rows []templateRow
	for _, kind := range reg.Kinds() {
		if only != "" && !strings.EqualFold(string(kind), string(only)) {
			continue
		}
		def := reg.Default(kind)
		for _, m := range reg.List(kind) {
			rows = append(rows, templateRow{
				Section:     kind,
				Variant:     m.ID,
				Name:        m.Metadata.Name,
				Description: m.Metadata.Description,
				Default:     def != nil && def.ID == m.ID,
			})
		}
	}

	return rows
}
