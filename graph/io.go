package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ttpr0/go-mosp/geo"
	. "github.com/ttpr0/go-mosp/util"
)

//*******************************************
// binary graph files
//*******************************************

// Stores the graph into files prefixed with path
// (path-nodes, path-ids, path-edges, path-weight).
func StoreGraph(g *Graph, path string) error {
	base := g.base
	if err := WriteArrayToFile[Node](base.nodes, path+"-nodes"); err != nil {
		return fmt.Errorf("store nodes: %w", err)
	}
	if err := WriteArrayToFile[int64](base.ids, path+"-ids"); err != nil {
		return fmt.Errorf("store ids: %w", err)
	}
	if err := WriteArrayToFile[Edge](base.edges, path+"-edges"); err != nil {
		return fmt.Errorf("store edges: %w", err)
	}
	return _StoreWeighting(g.weight, path+"-weight")
}

func LoadGraph(path string) (*Graph, error) {
	nodes, err := ReadArrayFromFile[Node](path + "-nodes")
	if err != nil {
		return nil, fmt.Errorf("load nodes: %w", err)
	}
	ids, err := ReadArrayFromFile[int64](path + "-ids")
	if err != nil {
		return nil, fmt.Errorf("load ids: %w", err)
	}
	edges, err := ReadArrayFromFile[Edge](path + "-edges")
	if err != nil {
		return nil, fmt.Errorf("load edges: %w", err)
	}
	weight, err := _LoadWeighting(path + "-weight")
	if err != nil {
		return nil, fmt.Errorf("load weighting: %w", err)
	}
	base, err := NewGraphBase(nodes, edges, ids)
	if err != nil {
		return nil, err
	}
	return BuildGraph(base, weight)
}

func _StoreWeighting(weight IMultiWeighting, filename string) error {
	writer := NewBufferWriter()
	if err := Write[int32](writer, int32(weight.Dim())); err != nil {
		return err
	}
	costs := NewArray[float64](weight.EdgeCount() * weight.Dim())
	for i := 0; i < weight.EdgeCount(); i++ {
		copy(costs[i*weight.Dim():], weight.GetEdgeCosts(int32(i)))
	}
	if err := WriteArray[float64](writer, costs); err != nil {
		return err
	}
	return os.WriteFile(filename, writer.Bytes(), 0o644)
}

func _LoadWeighting(filename string) (*MultiWeighting, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	reader := NewBufferReader(data)
	dim, err := Read[int32](reader)
	if err != nil {
		return nil, err
	}
	costs, err := ReadArray[float64](reader)
	if err != nil {
		return nil, err
	}
	if dim <= 0 || costs.Length()%int(dim) != 0 {
		return nil, fmt.Errorf("%w: %v costs for dimension %v", ErrDimensionMismatch, costs.Length(), dim)
	}
	return &MultiWeighting{
		dim:   int(dim),
		costs: costs,
	}, nil
}

//*******************************************
// json graph files
//*******************************************

type JSONNode struct {
	ID  int64   `json:"id"`
	Lon float32 `json:"lon"`
	Lat float32 `json:"lat"`
}

type JSONEdge struct {
	From  int64     `json:"from"`
	To    int64     `json:"to"`
	Costs []float64 `json:"costs"`
}

type JSONGraph struct {
	Dim   int        `json:"dim"`
	Nodes []JSONNode `json:"nodes"`
	Edges []JSONEdge `json:"edges"`
}

// Reads a graph from its json representation.
//
// Edges may reference nodes missing from the node list, those are added without location.
func ReadGraphJSON(r io.Reader) (*Graph, error) {
	var data JSONGraph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode graph: %w", err)
	}
	if data.Dim <= 0 {
		return nil, fmt.Errorf("%w: dimension %v", ErrDimensionMismatch, data.Dim)
	}
	builder := NewGraphBuilder(data.Dim)
	for _, node := range data.Nodes {
		builder.AddNode(node.ID, geo.Coord{node.Lon, node.Lat})
	}
	for _, edge := range data.Edges {
		if _, err := builder.AddEdge(edge.From, edge.To, edge.Costs...); err != nil {
			return nil, err
		}
	}
	return builder.Build()
}

func ReadGraphJSONFromFile(filename string) (*Graph, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadGraphJSON(file)
}

func WriteGraphJSON(w io.Writer, g IGraph) error {
	data := JSONGraph{
		Dim:   g.Dim(),
		Nodes: make([]JSONNode, 0, g.NodeCount()),
		Edges: make([]JSONEdge, 0, g.EdgeCount()),
	}
	for i := 0; i < g.NodeCount(); i++ {
		node := g.GetNode(int32(i))
		data.Nodes = append(data.Nodes, JSONNode{
			ID:  g.GetNodeID(int32(i)),
			Lon: node.Loc[0],
			Lat: node.Loc[1],
		})
	}
	for i := 0; i < g.EdgeCount(); i++ {
		edge := g.GetEdge(int32(i))
		costs := make([]float64, g.Dim())
		copy(costs, g.GetEdgeCosts(int32(i)))
		data.Edges = append(data.Edges, JSONEdge{
			From:  g.GetNodeID(edge.NodeA),
			To:    g.GetNodeID(edge.NodeB),
			Costs: costs,
		})
	}
	return json.NewEncoder(w).Encode(data)
}
