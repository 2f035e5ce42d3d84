// Package config resolves runtime settings from defaults, an optional
// TOML file, environment variables and command-line flags.
package config

import (
	"os"
	"slices"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
)

// Config holds all runtime settings.
type Config struct {
	Log     LogConfig     `toml:"log"`
	Catalog CatalogConfig `toml:"catalog"`
}

// LogConfig controls where and how verbosely events are logged.
// An empty File means no log file.
type LogConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// CatalogConfig names files that replace the built-in catalogs.
// Empty paths keep the built-in data.
type CatalogConfig struct {
	Documentation string `toml:"documentation"`
	SelfRating    string `toml:"self_rating"`
	Tracker       string `toml:"tracker"`
	Risks         string `toml:"risks"`
}

// Levels lists the accepted log levels.
var Levels = []string{"debug", "info", "warn", "error"}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{Log: LogConfig{Level: "info"}}
}

// Load builds the configuration from defaults, the TOML file at path
// (or $EPEAT_CONFIG when path is empty) and environment overrides.
// A missing file is an error only when a path was given.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv("EPEAT_CONFIG")
	}
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return goerr.Wrap(err, "failed to parse config file", goerr.V("path", path))
	}
	return nil
}

func applyEnv(cfg *Config) {
	setFromEnv(&cfg.Log.File, "EPEAT_LOG_FILE")
	setFromEnv(&cfg.Log.Level, "EPEAT_LOG_LEVEL")
	setFromEnv(&cfg.Catalog.Documentation, "EPEAT_DOCUMENTATION_CATALOG")
	setFromEnv(&cfg.Catalog.SelfRating, "EPEAT_SELF_RATING_CATALOG")
	setFromEnv(&cfg.Catalog.Tracker, "EPEAT_TRACKER_CATALOG")
	setFromEnv(&cfg.Catalog.Risks, "EPEAT_RISK_CATALOG")
}

func setFromEnv(dst *string, name string) {
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		*dst = v
	}
}

// Validate checks the configuration for unsupported values.
func (c Config) Validate() error {
	if !slices.Contains(Levels, strings.ToLower(c.Log.Level)) {
		return goerr.New("unsupported log level",
			goerr.V("level", c.Log.Level), goerr.V("allowed", Levels))
	}
	return nil
}

// Flags are the persistent command-line overrides.
type Flags struct {
	fs       *pflag.FlagSet
	Path     string
	LogFile  string
	LogLevel string
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	fs.StringVar(&f.Path, "config", "", "path to a TOML config file (env EPEAT_CONFIG)")
	fs.StringVar(&f.LogFile, "log-file", "", "write structured logs to this file (env EPEAT_LOG_FILE)")
	fs.StringVar(&f.LogLevel, "log-level", "", "log level: "+strings.Join(Levels, ", ")+" (env EPEAT_LOG_LEVEL)")
	return f
}

// Resolve loads the configuration and applies any flags set explicitly.
func (f *Flags) Resolve() (Config, error) {
	cfg, err := Load(f.Path)
	if err != nil {
		return Config{}, err
	}
	if f.fs.Changed("log-file") {
		cfg.Log.File = f.LogFile
	}
	if f.fs.Changed("log-level") {
		cfg.Log.Level = f.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
