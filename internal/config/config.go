package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. WORDCOUNTER_TARGET_WORD_COUNT.
const EnvPrefix = "WORDCOUNTER"

// Config represents the complete word counter configuration
type Config struct {
	// TargetWordCount is the word count the progress bar measures against.
	// It is not validated: 0 makes progress non-finite.
	TargetWordCount int `mapstructure:"target_word_count"`
	// Stylesheet is a YAML stylesheet path; empty uses the built-in sheet.
	Stylesheet string        `mapstructure:"stylesheet"`
	Logging    LoggingConfig `mapstructure:"logging"`
	Vitals     VitalsConfig  `mapstructure:"vitals"`
}

// LoggingConfig controls debug logging
type LoggingConfig struct {
	// Level is one of DEBUG, INFO, WARN, ERROR (default: INFO)
	Level string `mapstructure:"level"`
	// File receives JSON log lines; empty discards logs
	File string `mapstructure:"file"`
}

// VitalsConfig controls the startup metrics report
type VitalsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		TargetWordCount: 10,
		Logging: LoggingConfig{
			Level: "INFO",
		},
		Vitals: VitalsConfig{
			Enabled: true,
		},
	}
}

// SetDefaults registers default values with v
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("target_word_count", defaults.TargetWordCount)
	v.SetDefault("stylesheet", defaults.Stylesheet)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.file", defaults.Logging.File)
	v.SetDefault("vitals.enabled", defaults.Vitals.Enabled)
}

// Init prepares v: defaults, config file search paths and environment
// overrides. An explicit cfgFile must exist; otherwise a missing file in the
// search paths is not an error.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("wordcounter")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	// Replace dots with underscores for nested keys in env vars
	// e.g., WORDCOUNTER_LOGGING_LEVEL for logging.level
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

// Load unmarshals the current configuration from v
func Load(v *viper.Viper) (*Config, error) {
	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// ConfigDir returns the configuration directory path
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "wordcounter")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".wordcounter"
	}
	return filepath.Join(home, ".config", "wordcounter")
}
