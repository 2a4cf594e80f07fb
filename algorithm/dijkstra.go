package algorithm

import (
	"fmt"
	"math"

	"github.com/ttpr0/go-mosp/graph"
	. "github.com/ttpr0/go-mosp/util"
)

type PQItem struct {
	item int32
	dist float64
}

// Computes the shortest distance from start to every node using only the cost
// component dim. Unreachable nodes get +Inf.
//
// Edges with a distance above max_range are not relaxed, use +Inf for no limit.
func CalcDijkstra(g graph.IGraph, start int32, dim int, max_range float64) (Array[float64], error) {
	dists, _, err := CalcShortestPathTree(g, start, dim, max_range)
	return dists, err
}

// Like CalcDijkstra but also returns the predecessor edge of every node (-1 for
// the start and unreached nodes).
func CalcShortestPathTree(g graph.IGraph, start int32, dim int, max_range float64) (Array[float64], Array[int32], error) {
	if !g.IsNode(start) {
		return nil, nil, fmt.Errorf("%w: %v", graph.ErrNodeNotFound, start)
	}
	if dim < 0 || dim >= g.Dim() {
		return nil, nil, fmt.Errorf("%w: component %v of %v", graph.ErrDimensionMismatch, dim, g.Dim())
	}
	dists := Fill(g.NodeCount(), math.Inf(1))
	preds := Fill(g.NodeCount(), int32(-1))
	visited := NewArray[bool](g.NodeCount())
	heap := NewPriorityQueue[PQItem, float64](100)
	explorer := g.GetGraphExplorer()

	dists[start] = 0
	heap.Enqueue(PQItem{start, 0}, 0)
	for {
		curr_item, ok := heap.Dequeue()
		if !ok {
			break
		}
		curr_id := curr_item.item
		if visited[curr_id] {
			continue
		}
		visited[curr_id] = true
		curr_dist := dists[curr_id]
		explorer.ForAdjacentEdges(curr_id, graph.FORWARD, func(ref graph.EdgeRef) {
			other_id := ref.OtherID
			if visited[other_id] {
				return
			}
			new_length := curr_dist + explorer.GetEdgeCosts(ref)[dim]
			if new_length > max_range {
				return
			}
			if dists[other_id] > new_length {
				dists[other_id] = new_length
				preds[other_id] = ref.EdgeID
				heap.Enqueue(PQItem{other_id, new_length}, new_length)
			}
		})
	}
	return dists, preds, nil
}

// Componentwise minimum cost from start to every node. Entry i*dim+k holds the
// minimum of component k at node i.
func CalcIdealPoints(g graph.IGraph, start int32) (Array[float64], error) {
	dim := g.Dim()
	ideal := NewArray[float64](g.NodeCount() * dim)
	for k := 0; k < dim; k++ {
		dists, err := CalcDijkstra(g, start, k, math.Inf(1))
		if err != nil {
			return nil, err
		}
		for i, d := range dists {
			ideal[i*dim+k] = d
		}
	}
	return ideal, nil
}
