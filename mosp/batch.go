package mosp

import (
	"context"
	"runtime"

	"github.com/ttpr0/go-mosp/graph"
	"golang.org/x/sync/errgroup"
)

// Runs OneToAll for every source in parallel on the shared graph.
//
// Results are in the order of sources. The first failing run cancels the
// remaining ones and its error is returned.
func OneToAllBatch(ctx context.Context, g graph.IGraph, sources []int32, k int, opts ...Option) ([]*Frontiers, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	// normalize once for all runs
	o := buildOptions(opts)
	if o.normalize && o.scaled == nil {
		scaled, err := Normalize(g)
		if err != nil {
			return nil, err
		}
		opts = append(opts[:len(opts):len(opts)], WithScaledCosts(scaled))
	}

	results := make([]*Frontiers, len(sources))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))
	for i, source := range sources {
		run_opts := append(opts[:len(opts):len(opts)], WithContext(ctx))
		group.Go(func() error {
			frontiers, err := OneToAll(g, source, k, run_opts...)
			if err != nil {
				return err
			}
			results[i] = frontiers
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
