// Package config provides configuration management for textstat using
// Viper for flexible configuration loading from files, environment
// variables, and command-line flags.
//
// The configuration system supports YAML files and environment variable
// overrides with the TEXTSTAT_ prefix. It manages the analysis parameters
// (worker count, target term), output formatting, watch-mode behavior, and
// logging options.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/kaslabs/textstat/internal/analyze"
)

type Config struct {
	Analyze AnalyzeConfig `yaml:"analyze"`
	Output  OutputConfig  `yaml:"output"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

type AnalyzeConfig struct {
	Workers int    `yaml:"workers"`
	Term    string `yaml:"term"`
	// MaxInputBytes caps how much input is loaded into memory. Zero means
	// the built-in default.
	MaxInputBytes int64 `yaml:"max_input_bytes"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
}

type WatchConfig struct {
	// DebounceMillis groups rapid file events into one rebuild cycle.
	DebounceMillis int `yaml:"debounce_millis"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultMaxInputBytes bounds input loading when no cap is configured.
const DefaultMaxInputBytes = 1 << 30 // 1 GiB

// DefaultDebounce is the watch-mode debounce window when none is configured.
const DefaultDebounce = 300 * time.Millisecond

func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Apply defaults for values not set via file, env, or flag.
	if !viper.IsSet("analyze.workers") && config.Analyze.Workers == 0 {
		config.Analyze.Workers = analyze.DefaultWorkers
	}
	if !viper.IsSet("analyze.term") && config.Analyze.Term == "" {
		config.Analyze.Term = analyze.DefaultTerm
	}
	if config.Analyze.MaxInputBytes == 0 {
		config.Analyze.MaxInputBytes = DefaultMaxInputBytes
	}
	if config.Output.Format == "" {
		config.Output.Format = analyze.FormatText
	}
	if config.Watch.DebounceMillis == 0 {
		config.Watch.DebounceMillis = int(DefaultDebounce / time.Millisecond)
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	if config.Logging.Format == "" {
		config.Logging.Format = "text"
	}

	// Handle values set via viper (workaround for viper scalar handling)
	if viper.IsSet("analyze.workers") {
		config.Analyze.Workers = viper.GetInt("analyze.workers")
	}
	if viper.IsSet("analyze.term") {
		config.Analyze.Term = viper.GetString("analyze.term")
	}
	if viper.IsSet("output.format") {
		config.Output.Format = viper.GetString("output.format")
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates configuration values for correctness
func validateConfig(config *Config) error {
	if err := validateAnalyzeConfig(&config.Analyze); err != nil {
		return fmt.Errorf("analyze config: %w", err)
	}

	if err := validateOutputConfig(&config.Output); err != nil {
		return fmt.Errorf("output config: %w", err)
	}

	if err := validateWatchConfig(&config.Watch); err != nil {
		return fmt.Errorf("watch config: %w", err)
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// validateAnalyzeConfig validates the analysis parameters
func validateAnalyzeConfig(config *AnalyzeConfig) error {
	if config.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", config.Workers)
	}

	if config.Term == "" {
		return fmt.Errorf("term must not be empty")
	}

	if config.MaxInputBytes < 0 {
		return fmt.Errorf("max_input_bytes must not be negative, got %d", config.MaxInputBytes)
	}

	return nil
}

// validateOutputConfig validates output formatting values
func validateOutputConfig(config *OutputConfig) error {
	if !analyze.ValidFormat(config.Format) {
		return fmt.Errorf("format %q is not one of text, json, yaml", config.Format)
	}

	return nil
}

// validateWatchConfig validates watch-mode values
func validateWatchConfig(config *WatchConfig) error {
	if config.DebounceMillis < 0 {
		return fmt.Errorf("debounce_millis must not be negative, got %d", config.DebounceMillis)
	}

	return nil
}

// validateLoggingConfig validates logging values
func validateLoggingConfig(config *LoggingConfig) error {
	switch config.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level %q is not one of debug, info, warn, error", config.Level)
	}

	if config.Format != "text" && config.Format != "json" {
		return fmt.Errorf("format %q is not one of text, json", config.Format)
	}

	return nil
}
