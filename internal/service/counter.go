// Package service runs the acquire, classify, count pipeline over a sequence
// of entries with bounded parallelism.
package service

import (
	"context"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"slices"

	"github.com/vyskocilm/tally/internal/classify"
	"github.com/vyskocilm/tally/internal/count"
	"github.com/vyskocilm/tally/internal/log"
	"github.com/vyskocilm/tally/internal/model"
	"github.com/vyskocilm/tally/internal/parallel"
)

// Result is the outcome for a single input. Exactly one of Err or Counts is
// meaningful: when Err is set, the bytes could not be obtained and the input
// contributes nothing to an aggregate. Kind records the classification so
// the caller can suppress the character column once per binary fallback.
type Result struct {
	Index  int
	Path   string
	Kind   model.Kind
	Counts model.Counts
	Err    error
}

type Counter struct {
	limit   int
	counter model.Stats
}

func New(limit int, counter model.Stats) *Counter {
	if limit < 1 {
		limit = 1
	}
	return &Counter{limit: limit, counter: counter}
}

type indexed struct {
	index int
	entry model.Entry
}

// Do counts every entry of seq and returns the results in the entry,
// which means argument, order. Entries are processed concurrently, up to the
// configured limit, and the order is restored afterwards so output and
// aggregation stay deterministic. Acquisition failures are carried inside
// the Result, never as a sequence error, so one broken file does not stop
// the remaining ones.
func (c *Counter) Do(ctx context.Context, seq iter.Seq2[model.Entry, error]) []Result {
	var numbered iter.Seq2[indexed, error] = func(yield func(indexed, error) bool) {
		index := 0
		for entry, err := range seq {
			if !yield(indexed{index: index, entry: entry}, err) {
				return
			}
			index++
		}
	}

	var results []Result
	for result, err := range parallel.NewMap(ctx, c.limit, c.count).Iter(numbered) {
		if err != nil {
			// a canceled context or an error element of seq itself,
			// count never fails, entry failures stay inside Result
			slog.DebugContext(ctx, "skipping entry", "error", err)
			continue
		}
		results = append(results, result)
	}

	slices.SortFunc(results, func(a, b Result) int {
		return a.Index - b.Index
	})
	return results
}

func (c *Counter) count(ctx context.Context, in indexed) (Result, error) {
	entry := in.entry
	ctx = log.ContextAttrs(ctx, slog.String("path", entry.Path()))
	slog.DebugContext(ctx, "counting")
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	c.counter.IncInputs()
	result := Result{Index: in.index, Path: entry.Path()}

	f, err := entry.Open()
	if err != nil {
		c.counter.IncErrInputs()
		result.Err = err
		return result, nil
	}
	defer func() {
		_ = f.Close() // ignoring close error for CLI tool
	}()

	b, err := readAll(entry, f)
	if err != nil {
		c.counter.IncErrInputs()
		result.Err = fmt.Errorf("reading %s: %w", entry.Path(), err)
		return result, nil
	}

	classified := classify.Bytes(b)
	if classified.Kind() == model.Binary {
		slog.DebugContext(ctx, "falling back to byte units")
		c.counter.IncBinaryInputs()
	}

	result.Kind = classified.Kind()
	result.Counts = count.Accumulate(classified)
	return result, nil
}

// readAll reads the whole content, sizing the buffer from Stat when the
// entry is a regular file. Stdin and pipes report no useful size, so those
// fall back to io.ReadAll growth.
func readAll(entry model.Entry, r io.Reader) ([]byte, error) {
	info, err := entry.Stat()
	if err != nil || !info.Mode().IsRegular() || info.Size() <= 0 {
		return io.ReadAll(r)
	}
	b := make([]byte, 0, info.Size()+1)
	for {
		n, err := r.Read(b[len(b):cap(b)])
		b = b[:len(b)+n]
		if err != nil {
			if err == io.EOF {
				return b, nil
			}
			return b, err
		}
		if len(b) == cap(b) {
			b = append(b, 0)[:len(b)]
		}
	}
}
