package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/conneroisu/storecraft/internal/build"
	"github.com/conneroisu/storecraft/internal/export"
	"github.com/conneroisu/storecraft/internal/sections"
)

var buildCmd = &cobra.Command{
	Use:     "build",
	Aliases: []string{"b"},
	Short:   "Write the static website for the store",
	Long: `Render the store into a static website: index.html, one page per
published custom page, styles.css, main.js, manifest.json, robots.txt and
sitemap.xml. Nothing is written when two published pages share a slug.

Examples:
  storecraft build                          # Build into dist/
  storecraft build -d public --minify=false # Readable output in public/
  storecraft build --base-url https://shop.example.com
  SOURCE_DATE_EPOCH=1700000000 storecraft build # Reproducible sitemap dates`,
	RunE: runBuild,
}

var buildFlags *StandardFlags

func init() {
	rootCmd.AddCommand(buildCmd)

	buildFlags = AddStandardFlags(buildCmd, "build", "output")
}

func runBuild(cmd *cobra.Command, _ []string) error {
	if err := buildFlags.ValidateFlags(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	buildDate, err := ParseBuildDate(buildFlags.BuildDate, os.Getenv(SourceDateEpochEnv))
	if err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)

	site, err := a.loadStore(ctx)
	if err != nil {
		return err
	}

	out, progress := cmd.OutOrStdout(), cmd.ErrOrStderr()
	if buildFlags.Quiet {
		out, progress = io.Discard, io.Discard
	}

	bundle, err := export.Pack(ctx, site, export.Options{
		Options: build.Options{
			Minify:    a.config.Build.Minify,
			BaseURL:   a.config.Build.BaseURL,
			BuildDate: buildDate,
			Progress:  progressPrinter(progress),
		},
		Registry: sections.NewRegistry(),
		Logger:   a.logger,
	})
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	if err := WriteBundle(a.config.Build.OutputDir, bundle); err != nil {
		return err
	}

	summary := buildSummary{
		Store:     bundle.StoreName,
		OutputDir: a.config.Build.OutputDir,
		Files:     bundle.Files.Paths(),
		Bytes:     bundle.Size(),
		CreatedAt: bundle.CreatedAt,
	}

	return writeOutput(out, buildFlags.OutputFormat, summary, func() string {
		rows := make([][]string, 0, len(summary.Files))
		for _, path := range summary.Files {
			rows = append(rows, []string{path, formatBytes(len(bundle.Files[path]))})
		}

		return renderTable([]string{"file", "size"}, rows) + "\n" +
			successStyle.Render(fmt.Sprintf("Built %d files (%s) into %s",
				len(summary.Files), formatBytes(summary.Bytes), summary.OutputDir))
	})
}

type buildSummary struct {
	Store     string    `json:"store" yaml:"store"`
	OutputDir string    `json:"output_dir" yaml:"output_dir"`
	Files     []string  `json:"files" yaml:"files"`
	Bytes     int       `json:"bytes" yaml:"bytes"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

func progressPrinter(w io.Writer) func(build.Progress) {
	return func(p build.Progress) {
		label := p.File
		if p.Section != "" {
			label += " " + mutedStyle.Render(string(p.Section))
		}
		fmt.Fprintf(w, "[%d/%d] %s\n", p.Done, p.Total, label)
	}
}

// WriteBundle writes every file of bundle under dir. Paths are flat names
// produced by the generator; anything escaping dir is rejected.
func WriteBundle(dir string, bundle export.Bundle) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, name := range bundle.Files.Paths() {
		clean := filepath.Clean(name)
		if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
			return fmt.Errorf("refusing to write %q outside %s", name, dir)
		}

		path := filepath.Join(dir, clean)
		if err := os.WriteFile(path, []byte(bundle.Files[name]), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	return nil
}
