// Package parallel provides a bounded-concurrency map over an iter.Seq2
// sequence carrying values or errors.
package parallel

import (
	"context"
	"iter"

	"golang.org/x/sync/errgroup"
)

// Map applies f to every element of a sequence using at most limit
// goroutines. Result ordering follows completion, not input, order.
type Map[I, O any] struct {
	ctx   context.Context
	limit int
	f     func(context.Context, I) (O, error)
}

func NewMap[I, O any](ctx context.Context, limit int, f func(context.Context, I) (O, error)) Map[I, O] {
	if limit < 1 {
		limit = 1
	}
	return Map[I, O]{ctx: ctx, limit: limit, f: f}
}

type result[O any] struct {
	value O
	err   error
}

// Iter consumes seq and yields one (value, error) pair per input element.
// Input errors are passed through without calling f. When the context is
// canceled the iteration stops and results of still running calls are
// dropped, so the caller never observes values produced after cancellation.
func (m Map[I, O]) Iter(seq iter.Seq2[I, error]) iter.Seq2[O, error] {
	return func(yield func(O, error) bool) {
		ctx, cancel := context.WithCancel(m.ctx)
		defer cancel()

		results := make(chan result[O])
		go func() {
			defer close(results)
			var g errgroup.Group
			g.SetLimit(m.limit)
			for in, err := range seq {
				if ctx.Err() != nil {
					break
				}
				if err != nil {
					select {
					case results <- result[O]{err: err}:
					case <-ctx.Done():
					}
					continue
				}
				g.Go(func() error {
					value, err := m.f(ctx, in)
					if ctx.Err() != nil {
						// canceled mid-call: drop the result
						return nil
					}
					select {
					case results <- result[O]{value: value, err: err}:
					case <-ctx.Done():
					}
					return nil
				})
			}
			_ = g.Wait()
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case r, ok := <-results:
				if !ok {
					return
				}
				if !yield(r.value, r.err) {
					return
				}
			}
		}
	}
}
