package weighting

import (
	"errors"
	"fmt"

	"github.com/ttpr0/go-mosp/attr"
	"github.com/ttpr0/go-mosp/graph"
	"golang.org/x/exp/slog"
)

var (
	ErrNoObjectives      = errors.New("weighting: no objectives")
	ErrAttributeMismatch = errors.New("weighting: attributes do not match graph")
)

//*******************************************
// weighting options
//*******************************************

// Objectives and preferences of a profile. Every objective becomes one
// dimension of the edge cost vectors, in the given order.
type WeightingOptions struct {
	Objectives       []ObjectiveType     `yaml:"objectives" toml:"objectives" json:"objectives" validate:"required,min=1"`
	Elevation        ElevationPreference `yaml:"elevation" toml:"elevation" json:"elevation"`
	ElevationPenalty PenaltyType         `yaml:"elevation-penalty" toml:"elevation-penalty" json:"elevation_penalty"`
	Turns            TurnPreference      `yaml:"turns" toml:"turns" json:"turns"`
	TurnPenalty      PenaltyType         `yaml:"turn-penalty" toml:"turn-penalty" json:"turn_penalty"`
	Greenways        bool                `yaml:"greenways" toml:"greenways" json:"greenways"`
	// maxspeed in km/h up to which a road counts as calm
	SpeedRestriction int `yaml:"speed-restriction" toml:"speed-restriction" json:"speed_restriction" validate:"gte=0"`
}

func DefaultOptions() WeightingOptions {
	return WeightingOptions{
		Objectives:       []ObjectiveType{GRADE, TURNS, ROAD_TYPE},
		Elevation:        FLAT,
		ElevationPenalty: LINEAR,
		Turns:            FEW_TURNS,
		TurnPenalty:      LINEAR,
		Greenways:        true,
		SpeedRestriction: 50,
	}
}

func (self *WeightingOptions) Dim() int {
	return len(self.Objectives)
}

func (self *WeightingOptions) ObjectiveNames() []string {
	names := make([]string, len(self.Objectives))
	for i, obj := range self.Objectives {
		names[i] = obj.String()
	}
	return names
}

//*******************************************
// build weighting
//*******************************************

// Computes the cost vector of every edge from the graph attributes.
func BuildWeighting(base graph.IGraphBase, attributes *attr.GraphAttributes, options WeightingOptions) (*graph.MultiWeighting, error) {
	if options.Dim() == 0 {
		return nil, ErrNoObjectives
	}
	if attributes.EdgeCount() != base.EdgeCount() || attributes.NodeCount() != base.NodeCount() {
		return nil, fmt.Errorf("%w: %v/%v attributed nodes/edges for %v/%v", ErrAttributeMismatch,
			attributes.NodeCount(), attributes.EdgeCount(), base.NodeCount(), base.EdgeCount())
	}
	weight := graph.NewMultiWeighting(base.EdgeCount(), options.Dim())
	for i := 0; i < base.EdgeCount(); i++ {
		edge := base.GetEdge(int32(i))
		edge_attr := attributes.GetEdgeAttribs(int32(i))
		from := attributes.GetNodeAttribs(edge.NodeA)
		to := attributes.GetNodeAttribs(edge.NodeB)
		for d, obj := range options.Objectives {
			weight.SetEdgeCost(int32(i), d, obj.EdgeCost(edge_attr, from, to, &options))
		}
	}
	slog.Debug(fmt.Sprintf("built weighting %v for %v edges", options.ObjectiveNames(), base.EdgeCount()))
	return weight, nil
}

// Builds the graph with the weighting of options.
func BuildGraph(base *graph.GraphBase, attributes *attr.GraphAttributes, options WeightingOptions) (*graph.Graph, error) {
	weight, err := BuildWeighting(base, attributes, options)
	if err != nil {
		return nil, err
	}
	return graph.BuildGraph(base, weight)
}
