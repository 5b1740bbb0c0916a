package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// RunAllConcurrent is RunAll spread over at most workers goroutines. The
// output order matches the input and the first error cancels the remaining
// work. workers <= 1 falls back to RunAll.
func (p *Pipeline) RunAllConcurrent(ctx context.Context, seeds []uint64, workers int) ([]uint64, error) {
	if workers <= 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return p.RunAll(seeds)
	}

	out := make([]uint64, len(seeds))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, seed := range seeds {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := p.Run(seed)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
