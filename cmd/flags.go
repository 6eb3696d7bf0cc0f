package cmd

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/kaslabs/textstat/internal/analyze"
)

// registerAnalysisFlags adds the shared analysis flags to a command's flag
// set. The flag defaults sit at the bottom of viper's precedence order, so
// config files and TEXTSTAT_ environment variables still override them.
func registerAnalysisFlags(flags *pflag.FlagSet) {
	flags.IntP("workers", "w", analyze.DefaultWorkers, "number of parallel workers")
	flags.StringP("term", "t", analyze.DefaultTerm, "target term counted per token")
	flags.StringP("format", "f", analyze.FormatText, "output format: text, json, or yaml")
}

// bindAnalysisFlags binds a command's analysis flags into viper. Binding
// happens per invocation rather than at init so that two commands sharing
// the same keys never fight over which flag set viper consults.
func bindAnalysisFlags(flags *pflag.FlagSet) {
	_ = viper.BindPFlag("analyze.workers", flags.Lookup("workers"))
	_ = viper.BindPFlag("analyze.term", flags.Lookup("term"))
	_ = viper.BindPFlag("output.format", flags.Lookup("format"))
}
