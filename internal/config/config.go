// Package config loads the application configuration with Viper: the
// store document location, the preview server, static builds and logging.
//
// Values come from .storecraft.yml, STORECRAFT_ environment variables and
// command-line flags bound by the cmd package. Defaults are applied after
// unmarshalling and the result is validated before use.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	storeerrors "github.com/conneroisu/storecraft/internal/errors"
	"github.com/conneroisu/storecraft/internal/validation"
)

// Defaults applied when a value is not configured.
const (
	DefaultStorePath = "store.yaml"
	DefaultHost      = "localhost"
	DefaultPort      = 8080
	DefaultOutputDir = "dist"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

type Config struct {
	Store       StoreConfig       `mapstructure:"store" yaml:"store"`
	Server      ServerConfig      `mapstructure:"server" yaml:"server"`
	Build       BuildConfig       `mapstructure:"build" yaml:"build"`
	Development DevelopmentConfig `mapstructure:"development" yaml:"development"`
	Log         LogConfig         `mapstructure:"log" yaml:"log"`
}

type StoreConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

type ServerConfig struct {
	Port           int      `mapstructure:"port" yaml:"port"`
	Host           string   `mapstructure:"host" yaml:"host"`
	Open           bool     `mapstructure:"open" yaml:"open"`
	NoOpen         bool     `mapstructure:"no-open" yaml:"no-open"`
	AllowedOrigins []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
}

type BuildConfig struct {
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
	Minify    bool   `mapstructure:"minify" yaml:"minify"`
	BaseURL   string `mapstructure:"base_url" yaml:"base_url"`
}

type DevelopmentConfig struct {
	HotReload bool `mapstructure:"hot_reload" yaml:"hot_reload"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Address is the host:port the preview server listens on.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Store:       StoreConfig{Path: DefaultStorePath},
		Server:      ServerConfig{Host: DefaultHost, Port: DefaultPort, Open: true},
		Build:       BuildConfig{OutputDir: DefaultOutputDir, Minify: true},
		Development: DevelopmentConfig{HotReload: true},
		Log:         LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}

// EnvPrefix prefixes every environment override, e.g. STORECRAFT_SERVER_PORT.
const EnvPrefix = "STORECRAFT"

// Keys lists every configuration key.
var Keys = []string{
	"store.path",
	"server.port",
	"server.host",
	"server.open",
	"server.no-open",
	"server.allowed_origins",
	"build.output_dir",
	"build.minify",
	"build.base_url",
	"development.hot_reload",
	"log.level",
	"log.format",
}

// BindEnv makes v read STORECRAFT_<SECTION>_<OPTION> variables for every
// key, so they take part in Unmarshal even when no file sets them.
func BindEnv(v *viper.Viper) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for _, key := range Keys {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	return nil
}

// Load reads the global Viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads configuration from v, applies defaults and validates.
func LoadFrom(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, storeerrors.NewConfigError(storeerrors.CodeInvalidConfig, "failed to decode configuration").
			WithContext("cause", err.Error())
	}

	applyDefaults(v, &config)

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func applyDefaults(v *viper.Viper, config *Config) {
	if config.Store.Path == "" {
		config.Store.Path = DefaultStorePath
	}

	if config.Server.Host == "" {
		config.Server.Host = DefaultHost
	}
	if !v.IsSet("server.port") {
		config.Server.Port = DefaultPort
	}
	if !v.IsSet("server.open") {
		config.Server.Open = true
	}
	// Override open if no-open was passed on the command line
	if v.GetBool("server.no-open") {
		config.Server.Open = false
	}
	if len(config.Server.AllowedOrigins) == 0 && v.IsSet("server.allowed_origins") {
		config.Server.AllowedOrigins = v.GetStringSlice("server.allowed_origins")
	}

	if config.Build.OutputDir == "" {
		config.Build.OutputDir = DefaultOutputDir
	}
	if !v.IsSet("build.minify") {
		config.Build.Minify = true
	}

	if !v.IsSet("development.hot_reload") {
		config.Development.HotReload = true
	}

	if config.Log.Level == "" {
		config.Log.Level = DefaultLogLevel
	}
	if config.Log.Format == "" {
		config.Log.Format = DefaultLogFormat
	}
}

// validateConfig validates configuration values for security and correctness
func validateConfig(config *Config) error {
	checks := []struct {
		field string
		err   error
	}{
		{"store.path", validatePath(config.Store.Path)},
		{"server", validateServerConfig(&config.Server)},
		{"build.output_dir", validateOutputDir(config.Build.OutputDir)},
		{"build.base_url", validateBaseURL(config.Build.BaseURL)},
		{"log", validateLogConfig(&config.Log)},
	}

	for _, c := range checks {
		if c.err != nil {
			return storeerrors.NewConfigError(storeerrors.CodeInvalidConfig, c.err.Error()).WithField(c.field)
		}
	}

	return nil
}

// validateServerConfig validates server configuration values
func validateServerConfig(config *ServerConfig) error {
	// Allow 0 for system-assigned ports in testing
	if config.Port < 0 || config.Port > 65535 {
		return fmt.Errorf("port %d is not in valid range 0-65535", config.Port)
	}

	if strings.ContainsAny(config.Host, dangerousChars+`\`) {
		return fmt.Errorf("host contains dangerous characters: %s", config.Host)
	}

	for _, origin := range config.AllowedOrigins {
		if origin == "*" {
			continue
		}
		if err := validation.ValidateURL(origin); err != nil {
			return fmt.Errorf("allowed origin %q: %w", origin, err)
		}
	}

	return nil
}

func validateOutputDir(dir string) error {
	if err := validatePath(dir); err != nil {
		return err
	}

	clean := filepath.Clean(dir)
	if clean == "." || clean == string(filepath.Separator) {
		return fmt.Errorf("output_dir must be a subdirectory: %s", dir)
	}

	return nil
}

func validateBaseURL(raw string) error {
	if raw == "" {
		return nil
	}

	return validation.ValidateURL(raw)
}

func validateLogConfig(config *LogConfig) error {
	switch strings.ToLower(config.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", config.Level)
	}

	switch config.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format %q", config.Format)
	}

	return nil
}

const dangerousChars = ";&|$`()<>\"'"

// validatePath validates a file path for security
func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}

	cleanPath := filepath.Clean(path)

	// Reject path traversal attempts
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path contains traversal: %s", path)
	}

	if strings.ContainsAny(cleanPath, dangerousChars) {
		return fmt.Errorf("path contains dangerous characters: %s", path)
	}

	return nil
}
