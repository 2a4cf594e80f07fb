package graph

import (
	"errors"
	"fmt"

	. "github.com/ttpr0/go-mosp/util"
)

var (
	ErrNodeNotFound      = errors.New("graph: node not found")
	ErrDimensionMismatch = errors.New("graph: cost vector dimension mismatch")
	ErrEdgeCountMismatch = errors.New("graph: weighting does not match edge count")
)

//*******************************************
// graph base interface
//*******************************************

type IGraphBase interface {
	NodeCount() int
	EdgeCount() int
	GetNode(node int32) Node
	IsNode(node int32) bool
	GetEdge(edge int32) Edge
	IsEdge(edge int32) bool
	GetNodeID(node int32) int64
	GetNodeIndex(id int64) (int32, bool)
	ForAdjacentEdges(node int32, dir Direction, callback func(EdgeRef))
	GetNodeDegree(node int32, dir Direction) int
}

//*******************************************
// graph base
//*******************************************

var _ IGraphBase = &GraphBase{}

// Static topology of a graph.
//
// Nodes are addressed by dense indices, ids holds the external id of every node
// (e.g. the osm node id).
type GraphBase struct {
	nodes      Array[Node]
	edges      Array[Edge]
	ids        Array[int64]
	id_mapping Dict[int64, int32]
	topology   AdjacencyArray
}

// Creates a graph base. If ids is nil the node index is used as external id.
func NewGraphBase(nodes Array[Node], edges Array[Edge], ids Array[int64]) (*GraphBase, error) {
	if ids == nil {
		ids = NewArray[int64](nodes.Length())
		for i := range ids {
			ids[i] = int64(i)
		}
	}
	if ids.Length() != nodes.Length() {
		return nil, fmt.Errorf("graph: got %v ids for %v nodes", ids.Length(), nodes.Length())
	}
	id_mapping := NewDict[int64, int32](ids.Length())
	for i, id := range ids {
		if id_mapping.ContainsKey(id) {
			return nil, fmt.Errorf("graph: duplicate node id %v", id)
		}
		id_mapping[id] = int32(i)
	}
	node_count := int32(nodes.Length())
	for i, edge := range edges {
		if edge.NodeA < 0 || edge.NodeA >= node_count || edge.NodeB < 0 || edge.NodeB >= node_count {
			return nil, fmt.Errorf("%w: edge %v references %v->%v", ErrNodeNotFound, i, edge.NodeA, edge.NodeB)
		}
	}
	return &GraphBase{
		nodes:      nodes,
		edges:      edges,
		ids:        ids,
		id_mapping: id_mapping,
		topology:   BuildAdjacencyArray(nodes.Length(), edges),
	}, nil
}

func (self *GraphBase) NodeCount() int {
	return len(self.nodes)
}
func (self *GraphBase) EdgeCount() int {
	return len(self.edges)
}
func (self *GraphBase) IsNode(node int32) bool {
	return node >= 0 && node < int32(len(self.nodes))
}
func (self *GraphBase) GetNode(node int32) Node {
	return self.nodes[node]
}
func (self *GraphBase) IsEdge(edge int32) bool {
	return edge >= 0 && edge < int32(len(self.edges))
}
func (self *GraphBase) GetEdge(edge int32) Edge {
	return self.edges[edge]
}
func (self *GraphBase) GetNodeID(node int32) int64 {
	return self.ids[node]
}
func (self *GraphBase) GetNodeIndex(id int64) (int32, bool) {
	node, ok := self.id_mapping[id]
	return node, ok
}
func (self *GraphBase) ForAdjacentEdges(node int32, dir Direction, callback func(EdgeRef)) {
	self.topology.ForAdjacent(node, dir, callback)
}
func (self *GraphBase) GetNodeDegree(node int32, dir Direction) int {
	return self.topology.GetDegree(node, dir)
}

//*******************************************
// modification methods
//*******************************************

// Returns a new graph base without the given nodes and their adjacent edges.
//
// node_mapping maps old to new node indices, edge_mapping old to new edge
// indices; removed entries are -1.
func (self *GraphBase) RemoveNodes(nodes List[int32]) (*GraphBase, Array[int32], Array[int32]) {
	remove := NewArray[bool](self.NodeCount())
	for _, n := range nodes {
		remove[n] = true
	}

	new_nodes := NewList[Node](self.NodeCount())
	new_ids := NewList[int64](self.NodeCount())
	node_mapping := NewArray[int32](self.NodeCount())
	id := int32(0)
	for i := 0; i < self.NodeCount(); i++ {
		if remove[i] {
			node_mapping[i] = -1
			continue
		}
		new_nodes.Add(self.nodes[i])
		new_ids.Add(self.ids[i])
		node_mapping[i] = id
		id += 1
	}

	new_edges := NewList[Edge](self.EdgeCount())
	edge_mapping := NewArray[int32](self.EdgeCount())
	for i := 0; i < self.EdgeCount(); i++ {
		edge := self.edges[i]
		if remove[edge.NodeA] || remove[edge.NodeB] {
			edge_mapping[i] = -1
			continue
		}
		edge_mapping[i] = int32(new_edges.Length())
		new_edges.Add(Edge{
			NodeA: node_mapping[edge.NodeA],
			NodeB: node_mapping[edge.NodeB],
		})
	}

	id_mapping := NewDict[int64, int32](new_ids.Length())
	for i, id := range new_ids {
		id_mapping[id] = int32(i)
	}
	base := &GraphBase{
		nodes:      Array[Node](new_nodes),
		edges:      Array[Edge](new_edges),
		ids:        Array[int64](new_ids),
		id_mapping: id_mapping,
		topology:   BuildAdjacencyArray(new_nodes.Length(), Array[Edge](new_edges)),
	}
	return base, node_mapping, edge_mapping
}
