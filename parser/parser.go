package parser

import (
	"context"
	"fmt"

	"github.com/paulmach/osm"
	"github.com/ttpr0/go-mosp/algorithm"
	"github.com/ttpr0/go-mosp/attr"
	"github.com/ttpr0/go-mosp/geo"
	"github.com/ttpr0/go-mosp/graph"
	. "github.com/ttpr0/go-mosp/util"
	"golang.org/x/exp/slog"
)

// Parses an osm file (.pbf, .osm or .xml) into a graph base and its attributes.
func ParseGraphFile(ctx context.Context, filename string, decoder IOSMDecoder) (*graph.GraphBase, *attr.GraphAttributes, error) {
	source, err := FileSource(filename)
	if err != nil {
		return nil, nil, err
	}
	return ParseGraph(ctx, source, decoder)
}

// Builds the graph from the ways accepted by decoder.
//
// Ways are split at nodes shared with other ways, every split becomes an edge
// between the osm nodes at its ends. Two-way segments become one edge per
// direction. Node ids of the graph are the osm node ids.
func ParseGraph(ctx context.Context, source ScannerSource, decoder IOSMDecoder) (*graph.GraphBase, *attr.GraphAttributes, error) {
	osm_nodes := NewDict[int64, TempNode](1000)
	nodes := NewList[OSMNode](10000)
	edges := NewList[OSMEdge](10000)
	index_mapping := NewDict[int64, int](10000)

	if err := _RunPass(ctx, source, func(object osm.Object) {
		_InitWayHandler(object, decoder, osm_nodes)
	}); err != nil {
		return nil, nil, fmt.Errorf("scan ways: %w", err)
	}
	c := 0
	if err := _RunPass(ctx, source, func(object osm.Object) {
		if _NodeHandler(object, decoder, osm_nodes, &nodes, index_mapping) {
			c += 1
			if c%1000 == 0 {
				slog.Debug(fmt.Sprintf("nodes: %v", c))
			}
		}
	}); err != nil {
		return nil, nil, fmt.Errorf("scan nodes: %w", err)
	}
	if err := _RunPass(ctx, source, func(object osm.Object) {
		_WayHandler(object, decoder, &edges, osm_nodes, index_mapping)
	}); err != nil {
		return nil, nil, fmt.Errorf("split ways: %w", err)
	}
	slog.Info(fmt.Sprintf("parsed osm: %v nodes, %v edges", nodes.Length(), edges.Length()))

	return _CreateGraphBase(nodes, edges)
}

func _RunPass(ctx context.Context, source ScannerSource, handler func(osm.Object)) error {
	scanner, err := source(ctx)
	if err != nil {
		return err
	}
	defer scanner.Close()
	for scanner.Scan() {
		handler(scanner.Object())
	}
	return scanner.Err()
}

func _CreateGraphBase(osmnodes List[OSMNode], osmedges List[OSMEdge]) (*graph.GraphBase, *attr.GraphAttributes, error) {
	nodes := NewList[graph.Node](osmnodes.Length())
	ids := NewList[int64](osmnodes.Length())
	node_attrs := NewList[attr.NodeAttribs](osmnodes.Length())
	for _, osmnode := range osmnodes {
		nodes.Add(graph.Node{Loc: osmnode.Point})
		ids.Add(osmnode.ID)
		node_attrs.Add(osmnode.Attr)
	}

	edges := NewList[graph.Edge](osmedges.Length() * 2)
	edge_attrs := NewList[attr.EdgeAttribs](osmedges.Length() * 2)
	edge_geoms := NewList[geo.CoordArray](osmedges.Length() * 2)
	for _, osmedge := range osmedges {
		edges.Add(graph.Edge{
			NodeA: int32(osmedge.NodeA),
			NodeB: int32(osmedge.NodeB),
		})
		edge_attrs.Add(osmedge.Attr)
		edge_geoms.Add(geo.CoordArray(osmedge.Nodes))
		if !osmedge.Attr.Oneway {
			edges.Add(graph.Edge{
				NodeA: int32(osmedge.NodeB),
				NodeB: int32(osmedge.NodeA),
			})
			edge_attrs.Add(osmedge.Attr)
			edge_geoms.Add(_Reversed(osmedge.Nodes))
		}
	}

	base, err := graph.NewGraphBase(Array[graph.Node](nodes), Array[graph.Edge](edges), Array[int64](ids))
	if err != nil {
		return nil, nil, err
	}
	attributes := attr.New(Array[attr.NodeAttribs](node_attrs), Array[attr.EdgeAttribs](edge_attrs), Array[geo.CoordArray](edge_geoms))
	return base, attributes, nil
}

func _Reversed(line List[geo.Coord]) geo.CoordArray {
	rev := make(geo.CoordArray, line.Length())
	for i, c := range line {
		rev[len(rev)-1-i] = c
	}
	return rev
}

// Removes all nodes outside the largest weakly connected component.
func KeepLargestComponent(base *graph.GraphBase, attributes *attr.GraphAttributes) (*graph.GraphBase, *attr.GraphAttributes, error) {
	g, err := graph.BuildGraph(base, graph.NewMultiWeighting(base.EdgeCount(), 1))
	if err != nil {
		return nil, nil, err
	}
	remove := algorithm.NodesOutsideLargestComponent(g)
	if remove.Length() == 0 {
		return base, attributes, nil
	}
	slog.Debug(fmt.Sprintf("removing %v nodes outside the largest component", remove.Length()))
	new_base, node_mapping, edge_mapping := base.RemoveNodes(remove)
	return new_base, attributes.Remap(node_mapping, edge_mapping), nil
}

//*******************************************
// osm handler methods
//*******************************************

func _InitWayHandler(object osm.Object, decoder IOSMDecoder, osm_nodes Dict[int64, TempNode]) {
	way, ok := object.(*osm.Way)
	if !ok {
		return
	}
	tags := Dict[string, string](way.TagMap())
	if !decoder.IsValidHighway(tags) {
		return
	}
	l := len(way.Nodes)
	if l < 2 {
		return
	}
	for i := 0; i < l; i++ {
		ndref := int64(way.Nodes[i].ID)
		node := osm_nodes[ndref]
		node.Count += 1
		osm_nodes[ndref] = node
	}
	node_a := osm_nodes[int64(way.Nodes[0].ID)]
	node_a.Count += 1
	osm_nodes[int64(way.Nodes[0].ID)] = node_a
	node_b := osm_nodes[int64(way.Nodes[l-1].ID)]
	node_b.Count += 1
	osm_nodes[int64(way.Nodes[l-1].ID)] = node_b
}

// Returns true if the node became a graph node.
func _NodeHandler(object osm.Object, decoder IOSMDecoder, osm_nodes Dict[int64, TempNode], nodes *List[OSMNode], index_mapping Dict[int64, int]) bool {
	node, ok := object.(*osm.Node)
	if !ok {
		return false
	}
	id := int64(node.ID)
	on, ok := osm_nodes[id]
	if !ok {
		return false
	}
	on.Point = geo.Coord{float32(node.Lon), float32(node.Lat)}
	on.Seen = true
	osm_nodes[id] = on
	if on.Count <= 1 {
		return false
	}
	index_mapping[id] = nodes.Length()
	nodes.Add(OSMNode{
		ID:    id,
		Point: on.Point,
		Attr:  decoder.DecodeNode(Dict[string, string](node.TagMap())),
	})
	return true
}

func _WayHandler(object osm.Object, decoder IOSMDecoder, edges *List[OSMEdge], osm_nodes Dict[int64, TempNode], index_mapping Dict[int64, int]) {
	way, ok := object.(*osm.Way)
	if !ok {
		return
	}
	tags := Dict[string, string](way.TagMap())
	if !decoder.IsValidHighway(tags) {
		return
	}
	l := len(way.Nodes)
	if l < 2 {
		return
	}
	// ways leaving the extract are dropped
	for _, wn := range way.Nodes {
		if !osm_nodes[int64(wn.ID)].Seen {
			return
		}
	}

	edge_attr := decoder.DecodeEdge(tags)
	start := int64(way.Nodes[0].ID)
	e := OSMEdge{}
	for i := 0; i < l; i++ {
		curr := int64(way.Nodes[i].ID)
		on := osm_nodes[curr]
		e.Nodes.Add(on.Point)
		if on.Count > 1 && i > 0 {
			e.NodeA = index_mapping[start]
			e.NodeB = index_mapping[curr]
			e.Attr = edge_attr
			e.Attr.Length = float32(geo.LineLength(geo.CoordArray(e.Nodes)))
			edges.Add(e)
			start = curr
			e = OSMEdge{}
			e.Nodes.Add(on.Point)
		}
	}
}

//*******************************************
// osm decoder
//*******************************************

type IOSMDecoder interface {
	IsValidHighway(tags Dict[string, string]) bool
	DecodeNode(tags Dict[string, string]) attr.NodeAttribs
	DecodeEdge(tags Dict[string, string]) attr.EdgeAttribs
}
