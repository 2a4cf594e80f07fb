package graph

import (
	"math"

	"github.com/ttpr0/go-mosp/geo"
)

//*******************************************
// graph interfaces
//******************************************

type IGraph interface {
	GetGraphExplorer() IGraphExplorer
	NodeCount() int
	EdgeCount() int
	// Number of objectives of every edge cost vector.
	Dim() int
	IsNode(node int32) bool
	GetNode(node int32) Node
	GetEdge(edge int32) Edge
	GetEdgeCosts(edge int32) []float64
	GetNodeID(node int32) int64
	GetNodeIndex(id int64) (int32, bool)
	GetClosestNode(point geo.Coord) (int32, bool)
}

// Read-only traversal of a graph.
type IGraphExplorer interface {
	// Iterates through the adjacency of a node calling the callback for every edge.
	//
	// direction tells the traversal direction (FORWARD means outgoing edges, BACKWARD ingoing edges)
	ForAdjacentEdges(node int32, dir Direction, callback func(EdgeRef))
	GetEdgeCosts(edge EdgeRef) []float64
	GetOtherNode(edge EdgeRef, node int32) int32
}

//*******************************************
// base-graph
//******************************************

var _ IGraph = &Graph{}

type Graph struct {
	base   *GraphBase
	weight IMultiWeighting
}

func (self *Graph) GetGraphExplorer() IGraphExplorer {
	return &BaseGraphExplorer{
		base:   self.base,
		weight: self.weight,
	}
}
func (self *Graph) NodeCount() int {
	return self.base.NodeCount()
}
func (self *Graph) EdgeCount() int {
	return self.base.EdgeCount()
}
func (self *Graph) Dim() int {
	return self.weight.Dim()
}
func (self *Graph) IsNode(node int32) bool {
	return self.base.IsNode(node)
}
func (self *Graph) GetNode(node int32) Node {
	return self.base.GetNode(node)
}
func (self *Graph) GetEdge(edge int32) Edge {
	return self.base.GetEdge(edge)
}
func (self *Graph) GetEdgeCosts(edge int32) []float64 {
	return self.weight.GetEdgeCosts(edge)
}
func (self *Graph) GetNodeID(node int32) int64 {
	return self.base.GetNodeID(node)
}
func (self *Graph) GetNodeIndex(id int64) (int32, bool) {
	return self.base.GetNodeIndex(id)
}
func (self *Graph) GetBase() *GraphBase {
	return self.base
}
func (self *Graph) GetWeighting() IMultiWeighting {
	return self.weight
}

// Closest node by great-circle distance, linear in the number of nodes.
func (self *Graph) GetClosestNode(point geo.Coord) (int32, bool) {
	closest := int32(-1)
	min_dist := math.Inf(1)
	for i := 0; i < self.base.NodeCount(); i++ {
		dist := geo.HaversineDistance(point, self.base.GetNode(int32(i)).Loc)
		if dist < min_dist {
			min_dist = dist
			closest = int32(i)
		}
	}
	return closest, closest >= 0
}

//*******************************************
// base-graph explorer
//******************************************

type BaseGraphExplorer struct {
	base   *GraphBase
	weight IMultiWeighting
}

func (self *BaseGraphExplorer) ForAdjacentEdges(node int32, direction Direction, callback func(EdgeRef)) {
	self.base.ForAdjacentEdges(node, direction, callback)
}
func (self *BaseGraphExplorer) GetEdgeCosts(edge EdgeRef) []float64 {
	return self.weight.GetEdgeCosts(edge.EdgeID)
}
func (self *BaseGraphExplorer) GetOtherNode(edge EdgeRef, node int32) int32 {
	e := self.base.GetEdge(edge.EdgeID)
	if node == e.NodeA {
		return e.NodeB
	}
	if node == e.NodeB {
		return e.NodeA
	}
	return -1
}

//*******************************************
// reweighted graph
//******************************************

var _ IGraph = &ReweightedGraph{}

// View of a graph with the edge costs replaced by another weighting.
// The underlying graph is shared, not copied.
type ReweightedGraph struct {
	*Graph
	weight IMultiWeighting
}

func (self *ReweightedGraph) GetGraphExplorer() IGraphExplorer {
	return &BaseGraphExplorer{
		base:   self.base,
		weight: self.weight,
	}
}
func (self *ReweightedGraph) Dim() int {
	return self.weight.Dim()
}
func (self *ReweightedGraph) GetEdgeCosts(edge int32) []float64 {
	return self.weight.GetEdgeCosts(edge)
}
func (self *ReweightedGraph) GetWeighting() IMultiWeighting {
	return self.weight
}
