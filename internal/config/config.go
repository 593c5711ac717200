// Package config provides Viper-based configuration loading for the
// dungeon assembly tools.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ContentConfig holds template content settings.
type ContentConfig struct {
	// TemplatesDir is the directory scanned for room template manifests.
	TemplatesDir string `mapstructure:"templates_dir"`
}

// AssemblyConfig holds dungeon assembly settings.
type AssemblyConfig struct {
	// Seed drives deterministic mesh selection when non-zero. Zero means
	// use a crypto-backed random source.
	Seed int64 `mapstructure:"seed"`
	// RoomSpacing is the world-space distance between sample-assembled
	// rooms along the X axis.
	RoomSpacing float64 `mapstructure:"room_spacing"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Content  ContentConfig  `mapstructure:"content"`
	Assembly AssemblyConfig `mapstructure:"assembly"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error
// describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateContent(c.Content); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateAssembly(c.Assembly); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateContent(c ContentConfig) error {
	if c.TemplatesDir == "" {
		return errors.New("content.templates_dir must not be empty")
	}
	return nil
}

func validateAssembly(a AssemblyConfig) error {
	if a.RoomSpacing < 0 {
		return fmt.Errorf("assembly.room_spacing must be >= 0, got %g", a.RoomSpacing)
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment
// variable overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with FORGE_ prefix
	v.SetEnvPrefix("FORGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("content.templates_dir", "content/templates")

	v.SetDefault("assembly.seed", 0)
	v.SetDefault("assembly.room_spacing", 8.0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}
