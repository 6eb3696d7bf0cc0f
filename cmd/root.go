// Package cmd provides the command-line interface for textstat with
// configuration management supporting multiple configuration sources.
//
// Configuration System:
//
//	The CLI supports flexible configuration through multiple sources with clear precedence:
//	1. Command-line flags (--workers, --term, etc.) - highest priority
//	2. TEXTSTAT_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (TEXTSTAT_ANALYZE_WORKERS, etc.)
//	4. Configuration files (.textstat.yml) - lowest priority
//
// Environment Variables:
//
//	TEXTSTAT_CONFIG_FILE: Path to custom configuration file
//	TEXTSTAT_ANALYZE_WORKERS: Override worker count
//	TEXTSTAT_ANALYZE_TERM: Override target term
//	And more following the TEXTSTAT_<SECTION>_<OPTION> pattern
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kaslabs/textstat/internal/config"
	"github.com/kaslabs/textstat/internal/logging"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "textstat",
	Short: "Concurrent text statistics for files",
	Long: `Textstat analyzes a text file with a fixed pool of parallel workers,
splitting the input on line boundaries and aggregating character, line, word,
and target-term counts into one deterministic report.

Quick Start:
  textstat analyze notes.txt              Analyze a file
  textstat analyze -t thread -w 8 big.log Count "thread" with 8 workers
  cat notes.txt | textstat analyze -      Analyze stdin
  textstat watch notes.txt                Re-analyze on every change

Command Aliases (for faster typing):
  analyze (a), watch (w), version (v)`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .textstat.yml, can also use TEXTSTAT_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig initializes the configuration system with support for multiple
// config sources.
//
// Configuration Loading Priority (highest to lowest):
//  1. --config flag: Explicitly specified config file path
//  2. TEXTSTAT_CONFIG_FILE environment variable: Custom config file path
//  3. Default: .textstat.yml in current directory
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("TEXTSTAT_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".textstat")
	}

	// Enable automatic environment variable binding with TEXTSTAT_ prefix
	// Examples: TEXTSTAT_ANALYZE_WORKERS, TEXTSTAT_OUTPUT_FORMAT
	viper.SetEnvPrefix("TEXTSTAT")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// If the config file is missing or malformed, Viper falls back to
	// defaults without failing.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds the logger configured by cfg for one command run.
func newLogger(cfg *config.Config, component string) logging.Logger {
	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.ParseLevel(cfg.Logging.Level),
		Format: cfg.Logging.Format,
		Output: os.Stderr,
	})

	return logger.WithComponent(component)
}
