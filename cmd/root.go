// Package cmd provides the storecraft command-line interface.
//
// Configuration sources, highest priority first:
//
//  1. Command-line flags (--store, --port, ...)
//  2. STORECRAFT_<SECTION>_<OPTION> environment variables
//  3. The file named by --config or STORECRAFT_CONFIG_FILE
//  4. .storecraft.yml in the working directory
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/conneroisu/storecraft/internal/config"
	"github.com/conneroisu/storecraft/internal/logging"
	"github.com/conneroisu/storecraft/internal/store"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "storecraft",
	Short: "Build storefront websites from a single store document",
	Long: `Storecraft turns a store document (branding, theme, sections, products
and pages) into a live preview and a static website bundle.

Quick Start:
  storecraft init                 Write a demo store.yaml and .storecraft.yml
  storecraft serve                Preview with live reload
  storecraft build                Write the static site to dist/
  storecraft plan                 Show the sections that will render`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is .storecraft.yml, can also use STORECRAFT_CONFIG_FILE)")
	flags.StringP("store", "s", config.DefaultStorePath, "store document (YAML or JSON)")
	flags.String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	flags.String("log-format", config.DefaultLogFormat, "log format (console, json)")

	bindFlags(rootCmd.PersistentFlags(), map[string]string{
		"store":      "store.path",
		"log-level":  "log.level",
		"log-format": "log.format",
	})
}

// initConfig selects the config file and binds environment overrides.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv(config.EnvPrefix + "_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".storecraft")
	}

	if err := config.BindEnv(viper.GetViper()); err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
	}

	// A missing or unreadable file leaves defaults in place
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// app is what every command needs: configuration and a logger.
type app struct {
	config *config.Config
	logger logging.Logger
}

func loadApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})

	return &app{config: cfg, logger: logger}, nil
}

func (a *app) loadStore(ctx context.Context) (*store.Configuration, error) {
	site, err := store.Load(a.config.Store.Path)
	if err != nil {
		a.logger.Error(ctx, err, "Failed to load store", "path", a.config.Store.Path)
		return nil, err
	}

	a.logger.Debug(ctx, "Store loaded", "path", a.config.Store.Path, "name", site.Branding.Name)

	return site, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
