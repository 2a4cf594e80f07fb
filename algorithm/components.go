package algorithm

import (
	"github.com/ttpr0/go-mosp/graph"
	. "github.com/ttpr0/go-mosp/util"
)

// Computes weakly connected components ignoring edge directions.
//
// Returns the component id of every node, ids are numbered in order of their
// lowest node.
func ConnectedComponents(g graph.IGraph) Array[int32] {
	groups := Fill(g.NodeCount(), int32(-1))
	explorer := g.GetGraphExplorer()
	stack := NewList[int32](100)

	group := int32(0)
	for i := 0; i < g.NodeCount(); i++ {
		if groups[i] != -1 {
			continue
		}
		groups[i] = group
		stack.Add(int32(i))
		for stack.Length() > 0 {
			curr := stack.Last()
			stack.Remove(stack.Length() - 1)
			visit := func(ref graph.EdgeRef) {
				if groups[ref.OtherID] != -1 {
					return
				}
				groups[ref.OtherID] = group
				stack.Add(ref.OtherID)
			}
			explorer.ForAdjacentEdges(curr, graph.FORWARD, visit)
			explorer.ForAdjacentEdges(curr, graph.BACKWARD, visit)
		}
		group += 1
	}
	return groups
}

// Returns the most frequent value, ties resolve to the smallest value.
func GetMostCommon(groups Array[int32]) int32 {
	counts := NewDict[int32, int](10)
	max_val := int32(-1)
	max_count := 0
	for _, val := range groups {
		count := counts[val] + 1
		counts[val] = count
		if count > max_count || (count == max_count && val < max_val) {
			max_count = count
			max_val = val
		}
	}
	return max_val
}

// Returns the nodes not part of the largest weakly connected component.
func NodesOutsideLargestComponent(g graph.IGraph) List[int32] {
	groups := ConnectedComponents(g)
	max_group := GetMostCommon(groups)
	remove := NewList[int32](100)
	for i, group := range groups {
		if group != max_group {
			remove.Add(int32(i))
		}
	}
	return remove
}
