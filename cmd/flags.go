package cmd

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/conneroisu/storecraft/internal/config"
)

// Output formats accepted by --output.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

var outputFormats = []string{FormatTable, FormatJSON, FormatYAML}

// StandardFlags provides consistent flag definitions across commands
type StandardFlags struct {
	// Server flags
	Port   int
	Host   string
	NoOpen bool

	// Build flags
	OutputDir string
	Minify    bool
	BaseURL   string
	BuildDate string

	// Output flags
	OutputFormat string
	Quiet        bool
}

// AddStandardFlags adds standard flags to a command. Server and build flags
// are bound to their configuration keys so flags win over file and env.
func AddStandardFlags(cmd *cobra.Command, flagTypes ...string) *StandardFlags {
	flags := &StandardFlags{}

	for _, flagType := range flagTypes {
		switch flagType {
		case "server":
			addServerFlags(cmd, flags)
		case "build":
			addBuildFlags(cmd, flags)
		case "output":
			addOutputFlags(cmd, flags)
		}
	}

	return flags
}

func addServerFlags(cmd *cobra.Command, flags *StandardFlags) {
	cmd.Flags().IntVarP(&flags.Port, "port", "p", config.DefaultPort, "Port to serve on")
	cmd.Flags().StringVar(&flags.Host, "host", config.DefaultHost, "Host to bind to")
	cmd.Flags().BoolVar(&flags.NoOpen, "no-open", false, "Don't open browser automatically")

	AddFlagValidation(cmd, "port", ValidatePort)
	AddFlagValidation(cmd, "host", ValidateHost)
	bindFlags(cmd.Flags(), map[string]string{
		"port":    "server.port",
		"host":    "server.host",
		"no-open": "server.no-open",
	})
}

func addBuildFlags(cmd *cobra.Command, flags *StandardFlags) {
	cmd.Flags().StringVarP(&flags.OutputDir, "out", "d", config.DefaultOutputDir, "Output directory")
	cmd.Flags().BoolVar(&flags.Minify, "minify", true, "Minify HTML, CSS and JavaScript")
	cmd.Flags().StringVar(&flags.BaseURL, "base-url", "", "Absolute site URL used by sitemap.xml and robots.txt")
	cmd.Flags().StringVar(&flags.BuildDate, "build-date", "",
		"Sitemap lastmod date (YYYY-MM-DD or RFC3339, default $SOURCE_DATE_EPOCH or now)")

	AddFlagValidation(cmd, "build-date", func(v string) error {
		_, err := ParseBuildDate(v, "")
		return err
	})

	bindFlags(cmd.Flags(), map[string]string{
		"out":      "build.output_dir",
		"minify":   "build.minify",
		"base-url": "build.base_url",
	})
}

func addOutputFlags(cmd *cobra.Command, flags *StandardFlags) {
	cmd.Flags().StringVarP(&flags.OutputFormat, "output", "o", FormatTable, "Output format (table|json|yaml)")
	cmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Suppress output")

	AddFlagValidation(cmd, "output", ValidateFormat)
}

// bindFlags binds flags to viper keys. A flag overrides file and env
// values only when it was set on the command line.
func bindFlags(fs *pflag.FlagSet, bindings map[string]string) {
	for flagName, configKey := range bindings {
		if flag := fs.Lookup(flagName); flag != nil {
			_ = viper.BindPFlag(configKey, flag)
		}
	}
}

// ValidateFlags validates flag combinations and values
func (f *StandardFlags) ValidateFlags() error {
	if f.Port < 0 || f.Port > 65535 {
		return fmt.Errorf("port must be between 0 and 65535, got %d", f.Port)
	}

	if f.Host != "" {
		if err := ValidateHost(f.Host); err != nil {
			return err
		}
	}

	if f.OutputFormat != "" {
		if err := ValidateFormat(f.OutputFormat); err != nil {
			return err
		}
	}

	return nil
}

// AddFlagValidation adds validation for a specific flag
func AddFlagValidation(cmd *cobra.Command, flagName string, validator func(string) error) {
	flag := cmd.Flags().Lookup(flagName)
	if flag == nil {
		return
	}

	flag.Value = &validatingValue{
		Value:     flag.Value,
		validator: validator,
	}
}

type validatingValue struct {
	pflag.Value
	validator func(string) error
}

func (v *validatingValue) Set(val string) error {
	if v.validator != nil {
		if err := v.validator(val); err != nil {
			return err
		}
	}

	return v.Value.Set(val)
}

// ValidatePort checks a port flag value. Zero picks a free port.
func ValidatePort(portStr string) error {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid port number: %s", portStr)
	}

	if port < 0 || port > 65535 {
		return fmt.Errorf("port must be between 0 and 65535, got %d", port)
	}

	return nil
}

// ValidateFormat checks an --output value.
func ValidateFormat(format string) error {
	if slices.Contains(outputFormats, strings.ToLower(format)) {
		return nil
	}

	return fmt.Errorf("invalid output format %s, must be one of: %s",
		format, strings.Join(outputFormats, ", "))
}

// ValidateHost rejects hosts that cannot be part of a listen address.
func ValidateHost(host string) error {
	if strings.TrimSpace(host) == "" {
		return fmt.Errorf("host cannot be empty")
	}
	if strings.ContainsAny(host, " /\\;&|`$") {
		return fmt.Errorf("invalid host %q", host)
	}

	return nil
}

// SourceDateEpochEnv is the reproducible-builds timestamp variable.
const SourceDateEpochEnv = "SOURCE_DATE_EPOCH"

// ParseBuildDate resolves the build date from the --build-date value, then
// from a SOURCE_DATE_EPOCH value. Both empty gives the zero time, which
// means now.
func ParseBuildDate(flagValue, epoch string) (time.Time, error) {
	if flagValue = strings.TrimSpace(flagValue); flagValue != "" {
		if t, err := time.Parse(time.DateOnly, flagValue); err == nil {
			return t.UTC(), nil
		}
		t, err := time.Parse(time.RFC3339, flagValue)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid build date %q: want YYYY-MM-DD or RFC3339", flagValue)
		}

		return t.UTC(), nil
	}

	if epoch = strings.TrimSpace(epoch); epoch != "" {
		seconds, err := strconv.ParseInt(epoch, 10, 64)
		if err != nil || seconds < 0 {
			return time.Time{}, fmt.Errorf("invalid %s %q", SourceDateEpochEnv, epoch)
		}

		return time.Unix(seconds, 0).UTC(), nil
	}

	return time.Time{}, nil
}
