package analyze

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kaslabs/textstat/internal/errors"
	"github.com/kaslabs/textstat/internal/logging"
	"github.com/kaslabs/textstat/internal/partition"
)

// DefaultWorkers is the worker count used when the caller does not set one.
const DefaultWorkers = 4

// DefaultTerm is the target term used when the caller does not set one.
const DefaultTerm = "thread"

// Options configures a single analysis run.
type Options struct {
	// Workers is the number of scan goroutines. Must be >= 1.
	Workers int
	// Term is the substring counted per token. Must be non-empty.
	Term string
}

// Engine coordinates partitioned analysis runs. It owns no input state
// between runs; each Run is an independent one-shot computation.
type Engine struct {
	logger  logging.Logger
	metrics *RunMetrics
}

// NewEngine creates an engine. A nil logger disables run logging.
func NewEngine(logger logging.Logger) *Engine {
	return &Engine{
		logger:  logger,
		metrics: NewRunMetrics(),
	}
}

// Metrics returns the engine's cumulative run metrics.
func (e *Engine) Metrics() *RunMetrics {
	return e.metrics
}

// Run analyzes input with opts.Workers parallel workers and returns the
// merged totals.
//
// The input buffer is read-only for the duration of the run and is shared
// by all workers without locking. The only mutable shared state is the
// aggregate, which workers touch exclusively through its locked Merge. Run
// blocks until every worker has finished — the join barrier is the single
// ordering guarantee, establishing that all merges happen before the final
// read — and then returns the totals. A worker failure aborts the whole
// run; no partial aggregate is ever returned.
func (e *Engine) Run(ctx context.Context, input []byte, opts Options) (*Report, error) {
	if opts.Workers < 1 {
		return nil, errors.ErrInvalidWorkers(opts.Workers)
	}
	if opts.Term == "" {
		return nil, errors.ErrEmptyTerm()
	}

	started := time.Now()
	parts := partition.Split(input, opts.Workers)
	agg := NewAggregate()

	if e.logger != nil {
		e.logger.Debug(ctx, "starting analysis run",
			"input_bytes", len(input),
			"workers", opts.Workers,
			"term", opts.Term,
		)
	}

	var (
		wg       sync.WaitGroup
		panicMu  sync.Mutex
		panicked []workerPanic
	)

	for i, part := range parts {
		w := &worker{
			id:   i,
			buf:  input,
			part: part,
			term: opts.Term,
			agg:  agg,
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					panicMu.Lock()
					panicked = append(panicked, workerPanic{id: w.id, value: r})
					panicMu.Unlock()
				}
			}()

			w.run()
		}()
	}

	// Join barrier: every merge happens before this returns.
	wg.Wait()

	if len(panicked) > 0 {
		first := panicked[0]
		err := errors.ErrWorkerFailed(first.id, fmt.Errorf("panic: %v", first.value)).
			WithComponent("analyze").
			WithContext("failed_workers", len(panicked))
		duration := time.Since(started)
		e.metrics.RecordRun(duration, err)
		if e.logger != nil {
			e.logger.Error(ctx, err, "analysis run failed")
		}

		return nil, err
	}

	duration := time.Since(started)
	report := &Report{
		Stats:      agg.Snapshot(),
		Term:       opts.Term,
		Workers:    opts.Workers,
		InputBytes: len(input),
		Duration:   duration,
	}
	e.metrics.RecordRun(duration, nil)

	if e.logger != nil {
		e.logger.Info(ctx, "analysis run completed",
			"input_bytes", report.InputBytes,
			"workers", report.Workers,
			"lines", report.Lines,
			"words", report.Words,
			"duration_ms", duration.Milliseconds(),
		)
	}

	return report, nil
}

// workerPanic records a recovered worker panic for post-join reporting.
type workerPanic struct {
	id    int
	value interface{}
}
