// ABOUTME: Layered configuration for dash2html using viper.
// ABOUTME: Defaults, XDG config file, DASH2HTML_* environment, then flags.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harper/dash2html/internal/db"
	"github.com/spf13/viper"
)

// Config holds the settings for one run.
type Config struct {
	// DB is the Dash library to read.
	DB string `mapstructure:"db"`

	// Fixture, when set, replaces the library with a YAML fixture file.
	Fixture string `mapstructure:"fixture"`

	// Output is the report path; "-" writes to stdout.
	Output string `mapstructure:"output"`

	Verbose bool `mapstructure:"verbose"`
}

// EnvPrefix prefixes every environment override, e.g. DASH2HTML_DB.
const EnvPrefix = "DASH2HTML"

// ConfigDir returns the configuration directory path.
func ConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "dash2html")
}

// ConfigPath returns the default config file location.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// NewViper returns a viper instance with defaults and environment overrides
// registered. Flags are bound by the caller.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("db", db.DefaultPath())
	v.SetDefault("fixture", "")
	v.SetDefault("output", "-")
	v.SetDefault("verbose", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file (configFile, or the default location when
// empty) and returns the merged configuration. A missing default config
// file is not an error; a missing explicit one is.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.DB = expandHome(cfg.DB)
	cfg.Fixture = expandHome(cfg.Fixture)
	return &cfg, nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
