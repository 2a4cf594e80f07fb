package graph

import (
	"fmt"

	"github.com/ttpr0/go-mosp/geo"
	. "github.com/ttpr0/go-mosp/util"
)

//*******************************************
// build graphs
//*******************************************

func BuildGraph(base *GraphBase, weight IMultiWeighting) (*Graph, error) {
	if weight.EdgeCount() != base.EdgeCount() {
		return nil, fmt.Errorf("%w: %v weights for %v edges", ErrEdgeCountMismatch, weight.EdgeCount(), base.EdgeCount())
	}
	return &Graph{
		base:   base,
		weight: weight,
	}, nil
}

// Creates a view of g using weight as edge costs.
func Reweight(g *Graph, weight IMultiWeighting) (*ReweightedGraph, error) {
	if weight.EdgeCount() != g.EdgeCount() {
		return nil, fmt.Errorf("%w: %v weights for %v edges", ErrEdgeCountMismatch, weight.EdgeCount(), g.EdgeCount())
	}
	return &ReweightedGraph{
		Graph:  g,
		weight: weight,
	}, nil
}

//*******************************************
// graph builder
//*******************************************

// Incrementally collects nodes and directed edges keyed by external node ids.
//
// Edges are numbered in insertion order.
type GraphBuilder struct {
	dim        int
	nodes      List[Node]
	ids        List[int64]
	id_mapping Dict[int64, int32]
	edges      List[Edge]
	costs      List[float64]
}

func NewGraphBuilder(dim int) *GraphBuilder {
	return &GraphBuilder{
		dim:        dim,
		nodes:      NewList[Node](10),
		ids:        NewList[int64](10),
		id_mapping: NewDict[int64, int32](10),
		edges:      NewList[Edge](10),
		costs:      NewList[float64](10 * dim),
	}
}

// Adds a node, re-adding an existing id only updates its location.
func (self *GraphBuilder) AddNode(id int64, loc geo.Coord) int32 {
	if node, ok := self.id_mapping[id]; ok {
		self.nodes[node] = Node{Loc: loc}
		return node
	}
	node := int32(self.nodes.Length())
	self.nodes.Add(Node{Loc: loc})
	self.ids.Add(id)
	self.id_mapping[id] = node
	return node
}

// Adds a directed edge from -> to. Unknown endpoints are added without location.
func (self *GraphBuilder) AddEdge(from, to int64, costs ...float64) (int32, error) {
	if len(costs) != self.dim {
		return -1, fmt.Errorf("%w: edge %v->%v has %v costs, expected %v", ErrDimensionMismatch, from, to, len(costs), self.dim)
	}
	node_a, ok := self.id_mapping[from]
	if !ok {
		node_a = self.AddNode(from, geo.Coord{})
	}
	node_b, ok := self.id_mapping[to]
	if !ok {
		node_b = self.AddNode(to, geo.Coord{})
	}
	edge := int32(self.edges.Length())
	self.edges.Add(Edge{NodeA: node_a, NodeB: node_b})
	for _, c := range costs {
		self.costs.Add(c)
	}
	return edge, nil
}

func (self *GraphBuilder) NodeCount() int {
	return self.nodes.Length()
}

func (self *GraphBuilder) EdgeCount() int {
	return self.edges.Length()
}

func (self *GraphBuilder) Build() (*Graph, error) {
	base, err := NewGraphBase(Array[Node](self.nodes), Array[Edge](self.edges), Array[int64](self.ids))
	if err != nil {
		return nil, err
	}
	weight := &MultiWeighting{
		dim:   self.dim,
		costs: Array[float64](self.costs),
	}
	return BuildGraph(base, weight)
}
