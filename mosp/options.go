package mosp

import (
	"context"

	"github.com/ttpr0/go-mosp/graph"
)

type options struct {
	ctx            context.Context
	pruning        Pruning
	normalize      bool
	scaled         graph.IMultiWeighting
	max_iterations int
}

type Option func(*options)

// Orders labels on costs rescaled by Normalize. Pruning and reported label
// costs stay on the unscaled costs.
func WithNormalization() Option {
	return func(o *options) {
		o.normalize = true
	}
}

// Like WithNormalization but with precomputed scaled costs, e.g. the result
// of Normalize kept across runs on the same graph.
func WithScaledCosts(weight graph.IMultiWeighting) Option {
	return func(o *options) {
		o.scaled = weight
	}
}

func WithPruning(pruning Pruning) Option {
	return func(o *options) {
		o.pruning = pruning
	}
}

// Stops after n settled labels, n <= 0 means no limit.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.max_iterations = n
	}
}

// Stops when ctx is done. The context is checked once per iteration.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		o.ctx = ctx
	}
}

func buildOptions(opts []Option) options {
	o := options{
		ctx:     context.Background(),
		pruning: PruneFrontier,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.ctx == nil {
		o.ctx = context.Background()
	}
	return o
}
