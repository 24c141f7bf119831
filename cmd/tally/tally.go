package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"log/slog"

	"github.com/vyskocilm/tally/internal/input"
	"github.com/vyskocilm/tally/internal/model"
	"github.com/vyskocilm/tally/internal/report"
	"github.com/vyskocilm/tally/internal/service"
	"github.com/vyskocilm/tally/internal/stats"
)

// Tally is a component, which encapsulates one counting run and executes it.
type Tally struct {
	selection model.Selection
	human     bool
	workers   int
	counter   *stats.Stats
	entries   iter.Seq2[model.Entry, error]
}

// NewTally builds the run from the resolved configuration and the file
// arguments. Without arguments the standard input stream is counted, unless
// it is a terminal, which means there is nothing to count at all.
func NewTally(config model.Config, selection model.Selection, counter *stats.Stats, paths []string) (Tally, error) {
	if config.Version != 0 {
		return Tally{}, fmt.Errorf("%w: %d, expected 0", model.ErrUnsupportedConfigVersion, config.Version)
	}

	var entries iter.Seq2[model.Entry, error]
	if len(paths) == 0 {
		if input.StdinIsTerminal() {
			return Tally{}, model.ErrNoInput
		}
		entries = input.Stdin()
	} else {
		entries = input.Files(paths...)
	}

	return Tally{
		selection: selection,
		human:     config.Service.Human,
		workers:   config.Service.Workers,
		counter:   counter,
		entries:   entries,
	}, nil
}

// Do counts every input and renders one row per input to out, diagnostics to
// errW. A failed input is reported and skipped, it never stops the run and
// contributes nothing to the total row. The total row is rendered only when
// more than one input was counted.
func (t Tally) Do(ctx context.Context, out, errW io.Writer) error {
	w := report.New(out, t.selection, t.human)
	results := service.New(t.workers, t.counter).Do(ctx, t.entries)

	var total model.Counts
	var counted int
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(errW, "tally: %s: %v\n", diagnosticLabel(r.Path), cause(r.Err))
			continue
		}

		chars := true
		if r.Kind == model.Binary && t.selection.Chars {
			// one-time notice, the char column is dropped for this row only
			fmt.Fprintf(errW, "tally: %s: illegal byte sequence\n", diagnosticLabel(r.Path))
			chars = false
		}

		if err := w.Row(r.Counts, r.Path, chars); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		total.Add(r.Counts)
		counted++
	}

	if counted > 1 {
		if err := w.Total(total); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}

	for key, value := range t.counter.Stats() {
		slog.DebugContext(ctx, "run metric", "name", key, "value", value)
	}

	return ctx.Err()
}

func diagnosticLabel(path string) string {
	if path == "" {
		return "standard input"
	}
	return path
}

// cause strips the os wrapping so the report reads as
// "tally: <path>: no such file or directory" and the path is not repeated.
func cause(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
