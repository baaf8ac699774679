package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conneroisu/storecraft/internal/config"
	"github.com/conneroisu/storecraft/internal/store"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a store document",
	Long: `Decode and validate a store document: field rules, slug format, and
slug uniqueness among published pages. Defaults to the configured store.

Examples:
  storecraft validate
  storecraft validate shop.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := config.DefaultStorePath
	if len(args) == 1 {
		path = args[0]
	} else if cfg, err := config.Load(); err == nil {
		path = cfg.Store.Path
	}

	site, err := store.Load(path)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render("✗ "+path))

		return err
	}

	published := len(site.PublishedPages())
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
		successStyle.Render("✓"), path,
		mutedStyle.Render(fmt.Sprintf("(%d products, %d published pages)", len(site.Products), published)))

	return nil
}
