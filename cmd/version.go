package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/conneroisu/storecraft/internal/version"
)

var versionShort bool

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display the version, commit, build time, Go version and platform.

Examples:
  storecraft version            # Detailed version
  storecraft version --short    # Version and commit only
  storecraft version -o json    # As JSON`,
	RunE: runVersion,
}

var versionFlags *StandardFlags

func init() {
	rootCmd.AddCommand(versionCmd)

	versionFlags = AddStandardFlags(versionCmd, "output")
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Show short version only")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	info := version.Info()
	out := cmd.OutOrStdout()

	if versionShort {
		_, err := fmt.Fprintln(out, info.Short())

		return err
	}

	return writeOutput(out, versionFlags.OutputFormat, info, func() string {
		built := "unknown"
		if !info.BuildTime.IsZero() {
			built = info.BuildTime.Format(time.RFC3339)
		}

		return renderTable([]string{"field", "value"}, [][]string{
			{"version", info.Version},
			{"commit", info.GitCommit},
			{"built", built},
			{"go", info.GoVersion},
			{"platform", info.Platform},
			{"dirty", fmt.Sprint(info.Dirty)},
		})
	})
}
