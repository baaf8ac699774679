package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conneroisu/storecraft/internal/messaging"
	"github.com/conneroisu/storecraft/internal/store"
)

var linkCmd = &cobra.Command{
	Use:   "link [product]",
	Short: "Print the WhatsApp link of a product or of the store",
	Long: `Print the WhatsApp order link of a product, matched by id or by name
(case-insensitive), or the store's contact link when no product is given.

Examples:
  storecraft link                  # Contact link
  storecraft link "Linen Shirt"    # Order link of a product`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLink,
}

func init() {
	rootCmd.AddCommand(linkCmd)
}

func runLink(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	site, err := a.loadStore(commandContext(cmd))
	if err != nil {
		return err
	}

	link, err := whatsAppLink(store.Normalize(site), args)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), link)

	return err
}

func whatsAppLink(site *store.Configuration, args []string) (string, error) {
	if !site.Messaging.Enabled {
		return "", fmt.Errorf("messaging is disabled for %s", site.Branding.Name)
	}

	if len(args) == 0 {
		link, ok := messaging.ContactLink(site)
		if !ok {
			return "", fmt.Errorf("messaging phone %q has no digits", site.Messaging.Phone)
		}

		return link, nil
	}

	for _, p := range site.Products {
		if p.ID == args[0] || strings.EqualFold(p.Name, args[0]) {
			link, ok := messaging.ProductLink(site, p)
			if !ok {
				return "", fmt.Errorf("messaging phone %q has no digits", site.Messaging.Phone)
			}

			return link, nil
		}
	}

	return "", fmt.Errorf("no product with id or name %q", args[0])
}
