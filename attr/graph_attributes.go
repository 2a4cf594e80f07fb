package attr

import (
	"fmt"

	"github.com/ttpr0/go-mosp/geo"
	. "github.com/ttpr0/go-mosp/util"
)

type IAttributes interface {
	GetNodeAttribs(node int32) NodeAttribs
	GetEdgeAttribs(edge int32) EdgeAttribs
	GetEdgeGeom(edge int32) geo.CoordArray
}

// Attributes of the nodes and edges of a graph, indexed like the graph.
type GraphAttributes struct {
	node_attribs Array[NodeAttribs]
	edge_attribs Array[EdgeAttribs]
	edge_geoms   Array[geo.CoordArray]
}

func New(nodes Array[NodeAttribs], edges Array[EdgeAttribs], edge_geoms Array[geo.CoordArray]) *GraphAttributes {
	return &GraphAttributes{
		node_attribs: nodes,
		edge_attribs: edges,
		edge_geoms:   edge_geoms,
	}
}

func (self *GraphAttributes) NodeCount() int {
	return self.node_attribs.Length()
}
func (self *GraphAttributes) EdgeCount() int {
	return self.edge_attribs.Length()
}
func (self *GraphAttributes) GetNodeAttribs(node int32) NodeAttribs {
	return self.node_attribs[node]
}
func (self *GraphAttributes) GetEdgeAttribs(edge int32) EdgeAttribs {
	return self.edge_attribs[edge]
}
func (self *GraphAttributes) GetEdgeGeom(edge int32) geo.CoordArray {
	return self.edge_geoms[edge]
}
func (self *GraphAttributes) SetNodeElevation(node int32, elevation float32) {
	self.node_attribs[node] = NodeAttribs{
		Elevation:    elevation,
		HasElevation: true,
	}
}

//*******************************************
// modification methods
//*******************************************

// Returns the attributes following a node and edge remapping (old -> new,
// -1 for removed entries).
func (self *GraphAttributes) Remap(node_mapping Array[int32], edge_mapping Array[int32]) *GraphAttributes {
	node_count := 0
	for _, m := range node_mapping {
		if m >= 0 {
			node_count += 1
		}
	}
	edge_count := 0
	for _, m := range edge_mapping {
		if m >= 0 {
			edge_count += 1
		}
	}

	nodes := NewArray[NodeAttribs](node_count)
	for i, m := range node_mapping {
		if m >= 0 {
			nodes[m] = self.node_attribs[i]
		}
	}
	edges := NewArray[EdgeAttribs](edge_count)
	geoms := NewArray[geo.CoordArray](edge_count)
	for i, m := range edge_mapping {
		if m >= 0 {
			edges[m] = self.edge_attribs[i]
			geoms[m] = self.edge_geoms[i]
		}
	}
	return New(nodes, edges, geoms)
}

//*******************************************
// load and store methods
//*******************************************

// Stores the attributes into files prefixed with path
// (path-node_attrib, path-edge_attrib, path-geom_offsets, path-geom).
func Store(attr *GraphAttributes, path string) error {
	if err := WriteArrayToFile[NodeAttribs](attr.node_attribs, path+"-node_attrib"); err != nil {
		return fmt.Errorf("store node attributes: %w", err)
	}
	if err := WriteArrayToFile[EdgeAttribs](attr.edge_attribs, path+"-edge_attrib"); err != nil {
		return fmt.Errorf("store edge attributes: %w", err)
	}
	offsets := NewArray[int32](attr.edge_geoms.Length() + 1)
	coords := NewList[geo.Coord](attr.edge_geoms.Length() * 2)
	for i, geom := range attr.edge_geoms {
		offsets[i] = int32(coords.Length())
		for _, c := range geom {
			coords.Add(c)
		}
	}
	offsets[attr.edge_geoms.Length()] = int32(coords.Length())
	if err := WriteArrayToFile[int32](offsets, path+"-geom_offsets"); err != nil {
		return fmt.Errorf("store geometries: %w", err)
	}
	if err := WriteArrayToFile[geo.Coord](Array[geo.Coord](coords), path+"-geom"); err != nil {
		return fmt.Errorf("store geometries: %w", err)
	}
	return nil
}

func Load(path string) (*GraphAttributes, error) {
	nodes, err := ReadArrayFromFile[NodeAttribs](path + "-node_attrib")
	if err != nil {
		return nil, fmt.Errorf("load node attributes: %w", err)
	}
	edges, err := ReadArrayFromFile[EdgeAttribs](path + "-edge_attrib")
	if err != nil {
		return nil, fmt.Errorf("load edge attributes: %w", err)
	}
	offsets, err := ReadArrayFromFile[int32](path + "-geom_offsets")
	if err != nil {
		return nil, fmt.Errorf("load geometries: %w", err)
	}
	coords, err := ReadArrayFromFile[geo.Coord](path + "-geom")
	if err != nil {
		return nil, fmt.Errorf("load geometries: %w", err)
	}
	if offsets.Length() != edges.Length()+1 || int(offsets[edges.Length()]) != coords.Length() {
		return nil, fmt.Errorf("load geometries: %v offsets for %v edges", offsets.Length(), edges.Length())
	}
	geoms := NewArray[geo.CoordArray](edges.Length())
	for i := range geoms {
		geoms[i] = geo.CoordArray(coords[offsets[i]:offsets[i+1]])
	}
	return New(nodes, edges, geoms), nil
}
