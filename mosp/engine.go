package mosp

import (
	"fmt"
	"math"
	"time"

	"github.com/ttpr0/go-mosp/graph"
	. "github.com/ttpr0/go-mosp/util"
	"golang.org/x/exp/slog"
)

//*******************************************
// one-to-all search
//*******************************************

// Computes the Pareto frontier of every node reachable from source.
//
// Labels are settled in lexicographic order of their costs, or of their scaled
// costs with WithNormalization or WithScaledCosts. A label is kept only if no
// settled label of its node dominates or equals its cost, so every frontier
// holds one label per Pareto-optimal cost vector. Scaled costs change the order
// labels are found in, never the frontiers. Every edge cost vector must
// have k finite non-negative components; the input is rejected before any
// work otherwise.
//
// When the iteration budget is exhausted or the context is done the frontiers
// found so far are returned together with ErrBudgetExceeded or ErrCanceled.
func OneToAll(g graph.IGraph, source int32, k int, opts ...Option) (*Frontiers, error) {
	o := buildOptions(opts)
	if err := validateInput(g, source, k); err != nil {
		return nil, err
	}
	scaled := o.scaled
	if scaled == nil && o.normalize {
		w, err := Normalize(g)
		if err != nil {
			return nil, err
		}
		scaled = w
	}
	if scaled != nil && (scaled.Dim() != k || scaled.EdgeCount() != g.EdgeCount()) {
		return nil, fmt.Errorf("%w: scaled costs have %v components for %v edges", ErrDimensionMismatch, scaled.Dim(), scaled.EdgeCount())
	}

	search := &_Search{
		g:         g,
		explorer:  g.GetGraphExplorer(),
		k:         k,
		scaled:    scaled,
		opts:      o,
		frontiers: newFrontiers(g.NodeCount(), k, source, o.pruning),
		queue:     NewCandidateQueue(g.NodeCount()),
		cursors:   NewArray[int32](g.EdgeCount()),
	}
	err := search.run(source)
	stats := search.frontiers.stats
	slog.Debug(fmt.Sprintf("one-to-all from %v: settled %v labels in %v iterations (%v pushed, %v pruned) in %v", source, stats.Settled, stats.Iterations, stats.Pushed, stats.Pruned, stats.Duration))
	return search.frontiers, err
}

func validateInput(g graph.IGraph, source int32, k int) error {
	if g == nil {
		return ErrNilGraph
	}
	if k < 1 {
		return fmt.Errorf("%w: got %v", ErrBadDimension, k)
	}
	if !g.IsNode(source) {
		return fmt.Errorf("%w: %v", ErrSourceNotFound, source)
	}
	if g.Dim() != k {
		return fmt.Errorf("%w: graph has %v objectives, expected %v", ErrDimensionMismatch, g.Dim(), k)
	}
	for e := 0; e < g.EdgeCount(); e++ {
		costs := g.GetEdgeCosts(int32(e))
		if len(costs) != k {
			return fmt.Errorf("%w: edge %v has %v components, expected %v", ErrDimensionMismatch, e, len(costs), k)
		}
		for i, c := range costs {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return fmt.Errorf("%w: edge %v component %v is %v", ErrInvalidCost, e, i, c)
			}
			if c < 0 {
				return fmt.Errorf("%w: edge %v component %v is %v", ErrNegativeCost, e, i, c)
			}
		}
	}
	return nil
}

type _Search struct {
	g        graph.IGraph
	explorer graph.IGraphExplorer
	k        int
	// nil if labels are ordered on raw costs
	scaled graph.IMultiWeighting
	opts   options

	frontiers *Frontiers
	queue     *CandidateQueue
	// per edge index of the next label of the tail node to extend
	cursors Array[int32]
}

func (self *_Search) run(source int32) error {
	start := time.Now()
	stats := &self.frontiers.stats
	defer func() {
		self.frontiers.compact()
		stats.Duration = time.Since(start)
	}()
	// out of lexicographic cost order a later label may dominate a settled one
	drop := self.scaled != nil && self.opts.pruning == PruneFrontier

	zero := &Label{
		Node: source,
		Edge: -1,
		Cost: Zero(self.k),
	}
	zero.key = zero.Cost
	if self.scaled != nil {
		zero.key = Zero(self.k)
	}
	self.queue.Push(zero)
	stats.Pushed += 1

	done := self.opts.ctx.Done()
	for self.queue.Len() > 0 {
		if self.opts.max_iterations > 0 && stats.Iterations >= self.opts.max_iterations {
			return fmt.Errorf("%w: stopped after %v iterations", ErrBudgetExceeded, stats.Iterations)
		}
		select {
		case <-done:
			return fmt.Errorf("%w: %w", ErrCanceled, self.opts.ctx.Err())
		default:
		}

		label, _ := self.queue.Pop()
		stats.Iterations += 1
		self.frontiers.settle(label, drop)

		if next, ok := self.nextCandidate(label.Node); ok {
			self.queue.Push(next)
			stats.Pushed += 1
		}
		self.explorer.ForAdjacentEdges(label.Node, graph.FORWARD, func(ref graph.EdgeRef) {
			self.propagate(label, ref)
		})
	}
	return nil
}

// Finds the best label for node that extends a settled label of a predecessor.
//
// Every in-edge resumes scanning the tail's frontier at its cursor. Dropped tail
// labels and extensions dominated by the frontier of node are skipped for good,
// the scan stops at the first other one. Tail frontiers are sorted by ordering
// key, so that one is the best from the tail.
func (self *_Search) nextCandidate(node int32) (*Label, bool) {
	var best *Label
	self.explorer.ForAdjacentEdges(node, graph.BACKWARD, func(ref graph.EdgeRef) {
		labels := self.frontiers.labels[ref.OtherID]
		cursor := int(self.cursors[ref.EdgeID])
		if cursor >= len(labels) {
			return
		}
		raw, scaled := self.edgeCosts(ref)
		for ; cursor < len(labels); cursor++ {
			if labels[cursor].dominated {
				continue
			}
			candidate := labels[cursor].extend(ref.EdgeID, node, raw, scaled)
			if self.frontiers.isDominated(node, candidate.Cost) {
				self.frontiers.stats.Pruned += 1
				continue
			}
			if best == nil || LexLess(candidate.key, best.key) {
				best = candidate
			}
			break
		}
		self.cursors[ref.EdgeID] = int32(cursor)
	})
	return best, best != nil
}

// Offers the extension of label along ref as candidate of the edge head.
func (self *_Search) propagate(label *Label, ref graph.EdgeRef) {
	raw, scaled := self.edgeCosts(ref)
	candidate := label.extend(ref.EdgeID, ref.OtherID, raw, scaled)
	stats := &self.frontiers.stats
	if self.frontiers.isDominated(ref.OtherID, candidate.Cost) {
		stats.Pruned += 1
		return
	}
	inserted, replaced := self.queue.PushOrReplace(candidate)
	if inserted {
		stats.Pushed += 1
	}
	if replaced {
		stats.Replaced += 1
	}
}

func (self *_Search) edgeCosts(ref graph.EdgeRef) ([]float64, []float64) {
	raw := self.explorer.GetEdgeCosts(ref)
	if self.scaled == nil {
		return raw, nil
	}
	return raw, self.scaled.GetEdgeCosts(ref.EdgeID)
}
