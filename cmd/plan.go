package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/conneroisu/storecraft/internal/composer"
	"github.com/conneroisu/storecraft/internal/sections"
	"github.com/conneroisu/storecraft/internal/store"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the sections a page will render",
	Long: `Compose the home page, or a custom page with --page, and list the
header, body and footer sections in render order with the variant chosen
for each and the number of items it shows.

Examples:
  storecraft plan                  # Home page plan
  storecraft plan --page our-story # Plan of a custom page
  storecraft plan -o json          # Machine readable`,
	RunE: runPlan,
}

var (
	planFlags *StandardFlags
	planPage  string
)

func init() {
	rootCmd.AddCommand(planCmd)

	planFlags = AddStandardFlags(planCmd, "output")
	planCmd.Flags().StringVar(&planPage, "page", "", "Slug of the custom page to plan")
}

func runPlan(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	site, err := a.loadStore(commandContext(cmd))
	if err != nil {
		return err
	}

	plan, err := planFor(site, planPage)
	if err != nil {
		return err
	}

	steps := plan.Describe()

	return writeOutput(cmd.OutOrStdout(), planFlags.OutputFormat, steps, func() string {
		rows := make([][]string, 0, len(steps))
		for _, s := range steps {
			rows = append(rows, []string{
				strconv.Itoa(s.Position), string(s.Key), s.Variant, s.Name, strconv.Itoa(s.Items),
			})
		}

		return renderTable([]string{"#", "section", "variant", "name", "items"}, rows)
	})
}

func planFor(site *store.Configuration, slug string) (*composer.Plan, error) {
	reg := sections.NewRegistry()
	palette := composer.PaletteFor(site)

	if slug == "" {
		return composer.Compose(site, reg, palette), nil
	}

	for _, page := range site.PublishedPages() {
		if page.Slug == slug {
			return composer.ComposePage(site, reg, palette, page), nil
		}
	}

	return nil, fmt.Errorf("no published page with slug %q", slug)
}
