package graph

import (
	. "github.com/ttpr0/go-mosp/util"
)

//*******************************************
// adjacency array
//*******************************************

type _AdjEntry struct {
	EdgeID  int32
	OtherID int32
}

// Compressed adjacency of all nodes in both directions.
//
// Entries of a node are ordered by edge id.
type AdjacencyArray struct {
	fwd_first   Array[int32]
	fwd_entries Array[_AdjEntry]
	bwd_first   Array[int32]
	bwd_entries Array[_AdjEntry]
}

func BuildAdjacencyArray(node_count int, edges Array[Edge]) AdjacencyArray {
	fwd_first := NewArray[int32](node_count + 1)
	bwd_first := NewArray[int32](node_count + 1)
	for _, edge := range edges {
		fwd_first[edge.NodeA+1] += 1
		bwd_first[edge.NodeB+1] += 1
	}
	for i := 1; i <= node_count; i++ {
		fwd_first[i] += fwd_first[i-1]
		bwd_first[i] += bwd_first[i-1]
	}

	fwd_entries := NewArray[_AdjEntry](edges.Length())
	bwd_entries := NewArray[_AdjEntry](edges.Length())
	fwd_fill := NewArray[int32](node_count)
	bwd_fill := NewArray[int32](node_count)
	for id, edge := range edges {
		pos := fwd_first[edge.NodeA] + fwd_fill[edge.NodeA]
		fwd_entries[pos] = _AdjEntry{EdgeID: int32(id), OtherID: edge.NodeB}
		fwd_fill[edge.NodeA] += 1

		pos = bwd_first[edge.NodeB] + bwd_fill[edge.NodeB]
		bwd_entries[pos] = _AdjEntry{EdgeID: int32(id), OtherID: edge.NodeA}
		bwd_fill[edge.NodeB] += 1
	}

	return AdjacencyArray{
		fwd_first:   fwd_first,
		fwd_entries: fwd_entries,
		bwd_first:   bwd_first,
		bwd_entries: bwd_entries,
	}
}

func (self *AdjacencyArray) ForAdjacent(node int32, dir Direction, callback func(EdgeRef)) {
	var first Array[int32]
	var entries Array[_AdjEntry]
	if dir == FORWARD {
		first = self.fwd_first
		entries = self.fwd_entries
	} else {
		first = self.bwd_first
		entries = self.bwd_entries
	}
	for i := first[node]; i < first[node+1]; i++ {
		entry := entries[i]
		callback(EdgeRef{
			EdgeID:  entry.EdgeID,
			OtherID: entry.OtherID,
		})
	}
}

func (self *AdjacencyArray) GetDegree(node int32, dir Direction) int {
	if dir == FORWARD {
		return int(self.fwd_first[node+1] - self.fwd_first[node])
	}
	return int(self.bwd_first[node+1] - self.bwd_first[node])
}
