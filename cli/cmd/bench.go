package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/ardnew/pcomb/kv"
	"github.com/ardnew/pcomb/log"
)

// Bench parses the input document repeatedly and reports the timing.
// Combine with --pprof-mode to profile the parser.
type Bench struct {
	Iterations int  `default:"1000" help:"Number of times to parse the document" short:"n"`
	Cache      bool `default:"false" help:"Allow cached parse results"            negatable:""`
}

// BenchResult summarizes a benchmark run.
type BenchResult struct {
	Iterations int
	Entries    int
	Bytes      int
	Elapsed    time.Duration
}

// PerOp returns the mean time per parse.
func (r BenchResult) PerOp() time.Duration {
	if r.Iterations == 0 {
		return 0
	}

	return r.Elapsed / time.Duration(r.Iterations)
}

func (r BenchResult) String() string {
	return fmt.Sprintf(
		"%d iterations, %d entries, %d bytes: %v total, %v/op",
		r.Iterations, r.Entries, r.Bytes, r.Elapsed, r.PerOp(),
	)
}

// Run executes the bench command.
func (b *Bench) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	if b.Iterations <= 0 {
		return ErrIterations.With(slog.Int("iterations", b.Iterations))
	}

	src := sourceFilesFrom(ctx)
	if src == nil {
		return ErrNoSource
	}

	defer closeSources(ctx, src)

	var sb strings.Builder

	if _, err := io.Copy(&sb, src); err != nil {
		return ErrReadSource.Wrap(err)
	}

	result, err := b.run(ctx, sb.String())
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "bench complete",
		slog.Int("iterations", result.Iterations),
		slog.Int("entries", result.Entries),
		slog.Duration("elapsed", result.Elapsed),
		slog.Duration("per_op", result.PerOp()),
	)

	_, err = fmt.Fprintln(outputFrom(ctx), result)

	return err
}

func (b *Bench) run(ctx context.Context, input string) (BenchResult, error) {
	result := BenchResult{Iterations: b.Iterations, Bytes: len(input)}

	start := time.Now()

	for range b.Iterations {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		doc, err := kv.ParseDocument(ctx, input, kv.WithCache(b.Cache))
		if err != nil {
			return result, ErrReadSource.Wrap(err)
		}

		result.Entries = len(doc)
	}

	result.Elapsed = time.Since(start)

	return result, nil
}
