package routing

import (
	"fmt"

	"github.com/ttpr0/go-mosp/attr"
	"github.com/ttpr0/go-mosp/geo"
	"github.com/ttpr0/go-mosp/graph"
	"github.com/ttpr0/go-mosp/mosp"
)

//*******************************************
// route
//*******************************************

// Path from the source of a search to Node with its cost vector.
type Route struct {
	Node  int32
	Nodes []int32
	Edges []int32
	Cost  mosp.CostVector
	// one way length in metres
	Length float64
}

// Builds the route of a settled label.
//
// Lengths are taken from the edge attributes if present, otherwise from the
// great-circle distance between the node locations.
func NewRoute(g graph.IGraph, attributes attr.IAttributes, label *mosp.Label) Route {
	route := Route{
		Node:  label.Node,
		Nodes: label.Path(),
		Edges: label.Edges(),
		Cost:  label.Cost.Copy(),
	}
	for _, edge := range route.Edges {
		if attributes != nil {
			route.Length += float64(attributes.GetEdgeAttribs(edge).Length)
		} else {
			e := g.GetEdge(edge)
			route.Length += geo.HaversineDistance(g.GetNode(e.NodeA).Loc, g.GetNode(e.NodeB).Loc)
		}
	}
	return route
}

// Length of running the route to its end and back.
func (self *Route) OutAndBackLength() float64 {
	return 2 * self.Length
}

// Concatenated edge geometries, node locations if no attributes are given.
func (self *Route) Geometry(g graph.IGraph, attributes attr.IAttributes) geo.CoordArray {
	if attributes == nil {
		coords := make(geo.CoordArray, 0, len(self.Nodes))
		for _, node := range self.Nodes {
			coords = append(coords, g.GetNode(node).Loc)
		}
		return coords
	}
	coords := make(geo.CoordArray, 0, 2*len(self.Edges)+1)
	for i, edge := range self.Edges {
		geom := attributes.GetEdgeGeom(edge)
		if i > 0 && len(geom) > 0 {
			// first point equals the last one of the previous edge
			geom = geom[1:]
		}
		coords = append(coords, geom...)
	}
	if len(coords) == 0 && len(self.Nodes) > 0 {
		coords = append(coords, g.GetNode(self.Nodes[0]).Loc)
	}
	return coords
}

// GeoJSON feature of the route. Costs are reported under the objective names.
func (self *Route) ToFeature(g graph.IGraph, attributes attr.IAttributes, objectives []string) geo.Feature {
	line := geo.NewLineString(self.Geometry(g, attributes))
	costs := make(map[string]float64, len(self.Cost))
	for i, c := range self.Cost {
		name := fmt.Sprintf("cost_%v", i)
		if i < len(objectives) {
			name = objectives[i]
		}
		costs[name] = c
	}
	props := map[string]any{
		"node":            g.GetNodeID(self.Node),
		"costs":           costs,
		"length":          self.Length,
		"out_back_length": self.OutAndBackLength(),
		"hops":            len(self.Edges),
	}
	return geo.NewFeature(&line, props)
}
