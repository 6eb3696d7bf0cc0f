package cmd

import (
	"context"
	stderrors "errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/kaslabs/textstat/internal/analyze"
	"github.com/kaslabs/textstat/internal/config"
	"github.com/kaslabs/textstat/internal/input"
	"github.com/kaslabs/textstat/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:     "watch <file>",
	Aliases: []string{"w"},
	Short:   "Re-analyze a file whenever it changes",
	Long: `Watch runs one full analysis immediately, then watches the file and
re-runs the complete analysis after every change. Each run is an independent
one-shot computation over the whole file; nothing is carried over between
runs.

Stop with Ctrl-C. A summary of accumulated run metrics is logged on exit.

Examples:
  textstat watch notes.txt
  textstat watch -t error -w 8 app.log`,
	Args: cobra.ExactArgs(1),
	PreRun: func(cmd *cobra.Command, args []string) {
		bindAnalysisFlags(cmd.Flags())
	},
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	registerAnalysisFlags(watchCmd.Flags())
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := newLogger(cfg, "watch")
	path := args[0]
	if path == input.StdinPath {
		return fmt.Errorf("watch requires a file path, not stdin")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loader := input.NewLoader(cfg.Analyze.MaxInputBytes)
	engine := analyze.NewEngine(logger)
	opts := analyze.Options{
		Workers: cfg.Analyze.Workers,
		Term:    cfg.Analyze.Term,
	}

	runOnce := func() error {
		data, err := loader.Load(path)
		if err != nil {
			return err
		}

		report, err := engine.Run(ctx, data, opts)
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

	// Initial run before watching; a file that cannot be analyzed once is
	// not worth watching.
	if err := runOnce(); err != nil {
		return err
	}

	debounce := time.Duration(cfg.Watch.DebounceMillis) * time.Millisecond
	fw, err := watcher.NewFileWatcher(path, debounce)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	defer fw.Close()

	fw.AddHandler(func(events []watcher.ChangeEvent) error {
		logger.Debug(ctx, "change detected", "path", path, "events", len(events))
		if err := runOnce(); err != nil {
			// Keep watching through failed runs; the file may be
			// mid-save or transiently unreadable.
			logger.Warn(ctx, err, "analysis run failed, still watching")
		}

		return nil
	})

	logger.Info(ctx, "watching for changes", "path", path, "debounce", debounce.String())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return fw.Start(gctx)
	})

	err = g.Wait()

	snapshot := engine.Metrics().GetSnapshot()
	logger.Info(context.Background(), "watch session finished",
		"runs", snapshot.TotalRuns,
		"failed", snapshot.FailedRuns,
		"avg_duration", snapshot.AverageDuration.String(),
	)

	// Cancellation via Ctrl-C is a clean shutdown, not a failure.
	if err != nil && !stderrors.Is(err, context.Canceled) {
		return err
	}

	return nil
}
