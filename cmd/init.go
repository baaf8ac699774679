package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/storecraft/internal/config"
	"github.com/conneroisu/storecraft/internal/store"
)

// ConfigFileName is the project configuration written by init.
const ConfigFileName = ".storecraft.yml"

var initCmd = &cobra.Command{
	Use:     "init [dir]",
	Aliases: []string{"i"},
	Short:   "Create a demo store document and project configuration",
	Long: `Write a demo store.yaml and a .storecraft.yml into dir (default: the
current directory). The demo store has a hero, product sections, an FAQ,
two custom pages and WhatsApp ordering so every section kind can be previewed.

Examples:
  storecraft init                  # Initialize in the current directory
  storecraft init my-store         # Initialize in ./my-store
  storecraft init --force          # Overwrite existing files`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

var initForce bool

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing files")
}

func runInit(cmd *cobra.Command, args []string) error {
	projectDir := "."
	if len(args) == 1 {
		projectDir = args[0]
	}

	if err := os.MkdirAll(projectDir, 0o755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	storeData, err := store.Marshal(store.Default())
	if err != nil {
		return fmt.Errorf("failed to encode demo store: %w", err)
	}

	configData, err := projectConfig()
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	files := []struct {
		name string
		data []byte
	}{
		{config.DefaultStorePath, storeData},
		{ConfigFileName, configData},
	}

	out := cmd.OutOrStdout()
	for _, f := range files {
		path := filepath.Join(projectDir, f.name)
		if err := writeNew(path, f.data, initForce); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %s\n", successStyle.Render("created"), path)
	}

	fmt.Fprintln(out, mutedStyle.Render("Run 'storecraft serve' to preview your store."))

	return nil
}

// projectConfig renders the default configuration as YAML.
func projectConfig() ([]byte, error) {
	return yaml.Marshal(config.Default())
}

func writeNew(path string, data []byte, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to check %s: %w", path, err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
