package routing

import (
	"fmt"
	"sort"

	"github.com/ttpr0/go-mosp/attr"
	"github.com/ttpr0/go-mosp/graph"
	"github.com/ttpr0/go-mosp/mosp"
	"golang.org/x/exp/slog"
)

//*******************************************
// route alternatives
//*******************************************

type AlternativeOptions struct {
	// maximum number of returned routes, 0 for all
	MaxCount int `yaml:"max-count" toml:"max-count" json:"max_count" validate:"gte=0"`
	// routes sharing at least this fraction of nodes with an accepted route are skipped
	MaxSimilarity float64 `yaml:"max-similarity" toml:"max-similarity" json:"max_similarity" validate:"gte=0,lte=1"`
	// bounds of the out-and-back length in metres, 0 for no bound
	MinLength float64 `yaml:"min-length" toml:"min-length" json:"min_length" validate:"gte=0"`
	MaxLength float64 `yaml:"max-length" toml:"max-length" json:"max_length" validate:"gte=0"`
}

func DefaultAlternativeOptions() AlternativeOptions {
	return AlternativeOptions{
		MaxCount:      10,
		MaxSimilarity: 0.75,
	}
}

// Fraction of nodes of a contained in b, relative to the shorter route.
func RouteSimilarity(a, b []int32) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	nodes := make(map[int32]struct{}, len(b))
	for _, n := range b {
		nodes[n] = struct{}{}
	}
	shared := 0
	for _, n := range a {
		if _, ok := nodes[n]; ok {
			shared += 1
		}
	}
	return float64(shared) / float64(min(len(a), len(b)))
}

// Selects out-and-back runs from a one-to-all search.
//
// Every reachable node except the source contributes its latest settled
// label. Candidates are visited in node order and accepted unless they are
// too similar to an accepted route or violate the length bounds. The
// accepted routes are sorted by length.
func SelectAlternatives(g graph.IGraph, attributes attr.IAttributes, frontiers *mosp.Frontiers, options AlternativeOptions) []Route {
	accepted := make([]Route, 0, 10)
	for node := int32(0); node < int32(frontiers.NodeCount()); node++ {
		if node == frontiers.Source() {
			continue
		}
		label := frontiers.Latest(node)
		if label == nil {
			continue
		}
		route := NewRoute(g, attributes, label)
		if !_IsInBounds(route, options) {
			continue
		}
		if _IsTabu(route, accepted, options.MaxSimilarity) {
			continue
		}
		accepted = append(accepted, route)
	}
	sort.SliceStable(accepted, func(i, j int) bool {
		return accepted[i].Length < accepted[j].Length
	})
	if options.MaxCount > 0 && len(accepted) > options.MaxCount {
		accepted = accepted[:options.MaxCount]
	}
	slog.Debug(fmt.Sprintf("selected %v route alternatives", len(accepted)))
	return accepted
}

// All Pareto-optimal routes to target in settle order.
func TargetAlternatives(g graph.IGraph, attributes attr.IAttributes, frontiers *mosp.Frontiers, target int32) []Route {
	labels := frontiers.Get(target)
	routes := make([]Route, 0, len(labels))
	for _, label := range labels {
		routes = append(routes, NewRoute(g, attributes, label))
	}
	return routes
}

func _IsInBounds(route Route, options AlternativeOptions) bool {
	length := route.OutAndBackLength()
	if options.MinLength > 0 && length < options.MinLength {
		return false
	}
	if options.MaxLength > 0 && length > options.MaxLength {
		return false
	}
	return true
}

func _IsTabu(route Route, accepted []Route, max_similarity float64) bool {
	if max_similarity <= 0 {
		return false
	}
	for _, other := range accepted {
		if RouteSimilarity(other.Nodes, route.Nodes) >= max_similarity {
			return true
		}
	}
	return false
}
