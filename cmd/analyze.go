package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kaslabs/textstat/internal/analyze"
	"github.com/kaslabs/textstat/internal/config"
	"github.com/kaslabs/textstat/internal/input"
)

var analyzeCmd = &cobra.Command{
	Use:     "analyze <file>",
	Aliases: []string{"a"},
	Short:   "Analyze a text file with parallel workers",
	Long: `Analyze loads the file fully into memory, splits it into line-aligned
partitions (one per worker), scans every partition concurrently, and prints
the merged totals: characters, lines, words, and target-term occurrences.

The result is identical for any worker count; partitioning never splits a
line, and the merge is a commutative sum.

Examples:
  textstat analyze notes.txt               # defaults: 4 workers, term "thread"
  textstat analyze -w 8 -t error app.log   # 8 workers, count "error"
  textstat analyze -f json notes.txt       # JSON report
  cat notes.txt | textstat analyze -       # read from stdin`,
	Args: cobra.ExactArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		bindAnalysisFlags(cmd.Flags())
	},
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	registerAnalysisFlags(analyzeCmd.Flags())
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := newLogger(cfg, "analyze")
	ctx := cmd.Context()

	loader := input.NewLoader(cfg.Analyze.MaxInputBytes)
	data, err := loader.Load(args[0])
	if err != nil {
		logger.Error(ctx, err, "input loading failed", "path", args[0])
		return err
	}

	engine := analyze.NewEngine(logger)
	report, err := engine.Run(ctx, data, analyze.Options{
		Workers: cfg.Analyze.Workers,
		Term:    cfg.Analyze.Term,
	})
	if err != nil {
		return err
	}

	out, err := report.Format(cfg.Output.Format)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), out)

	return nil
}
