package mosp

import (
	"fmt"
	"math"

	"github.com/ttpr0/go-mosp/graph"
)

//*******************************************
// edge cost normalizer
//*******************************************

// Returns the edge costs of g rescaled per objective into [0, 100].
//
// Component i becomes 100*(x-min_i)/(max_i-min_i), or 0 if all edges share the
// same value. The graph itself is not modified.
func Normalize(g graph.IGraph) (*graph.MultiWeighting, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	k := g.Dim()
	edge_count := g.EdgeCount()
	min_costs := Inf(k)
	max_costs := make(CostVector, k)
	for i := range max_costs {
		max_costs[i] = math.Inf(-1)
	}
	for e := 0; e < edge_count; e++ {
		costs := g.GetEdgeCosts(int32(e))
		if len(costs) != k {
			return nil, fmt.Errorf("%w: edge %v has %v components, expected %v", ErrDimensionMismatch, e, len(costs), k)
		}
		for i, c := range costs {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return nil, fmt.Errorf("%w: edge %v component %v is %v", ErrInvalidCost, e, i, c)
			}
			min_costs[i] = math.Min(min_costs[i], c)
			max_costs[i] = math.Max(max_costs[i], c)
		}
	}

	weight := graph.NewMultiWeighting(edge_count, k)
	for e := 0; e < edge_count; e++ {
		costs := g.GetEdgeCosts(int32(e))
		for i, c := range costs {
			span := max_costs[i] - min_costs[i]
			if span == 0 {
				continue
			}
			weight.SetEdgeCost(int32(e), i, 100*(c-min_costs[i])/span)
		}
	}
	return weight, nil
}
