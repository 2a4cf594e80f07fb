package weighting

import (
	"math"

	"github.com/ttpr0/go-mosp/attr"
)

//*******************************************
// edge costs per objective
//*******************************************

// Cost of traversing an edge from node from to node to under the objective.
// All costs are >= 0, every objective except climb scales with the edge length.
func (self ObjectiveType) EdgeCost(edge attr.EdgeAttribs, from, to attr.NodeAttribs, options *WeightingOptions) float64 {
	length := float64(edge.Length)
	switch self {
	case LENGTH:
		return length
	case CLIMB:
		if !from.HasElevation || !to.HasElevation {
			return 0
		}
		return math.Max(0, float64(to.Elevation-from.Elevation))
	case GRADE:
		return _GradeCost(length, from, to, options) * length
	case TURNS:
		return _TurnCost(length, options) * length
	case ROAD_TYPE:
		return _RoadTypeCost(edge, options) * length
	case SPEED:
		return _SpeedCost(edge, options) * length
	default:
		panic("unknown objective type")
	}
}

func _GradeCost(length float64, from, to attr.NodeAttribs, options *WeightingOptions) float64 {
	cost := 50.0
	if !from.HasElevation || !to.HasElevation || length <= 0 {
		return cost
	}
	grade := math.Abs(float64(to.Elevation-from.Elevation)) / length
	var penalty float64
	switch options.ElevationPenalty {
	case LINEAR:
		penalty = 200 * grade
	case EXPONENTIAL:
		penalty = math.Pow(2, math.Min(5.6435, 20*grade))
	}
	switch options.Elevation {
	case FLAT:
		cost += penalty
	case STEEP:
		cost -= penalty
	}
	return math.Max(0, cost)
}

// Short segments mean many junctions along the way. Segments below 500, 1000
// and 1500 metres are rewarded or penalized in decreasing steps.
func _TurnCost(length float64, options *WeightingOptions) float64 {
	band := -1
	switch l := int(length); {
	case l < 500:
		band = 0
	case l < 1000:
		band = 1
	case l < 1500:
		band = 2
	}
	cost := 100.0
	var step float64
	switch options.TurnPenalty {
	case LINEAR:
		if band >= 0 {
			step = [3]float64{100, 75, 50}[band]
		}
	case EXPONENTIAL:
		if band >= 0 {
			step = math.Pow(2, float64(6-band))
		}
		if options.Turns == FEW_TURNS {
			cost = 0
		}
	}
	switch options.Turns {
	case MANY_TURNS:
		cost -= step
	case FEW_TURNS:
		cost += step
	}
	return math.Max(0, cost)
}

func _RoadTypeCost(edge attr.EdgeAttribs, options *WeightingOptions) float64 {
	cost := 100.0
	if edge.Type.IsMinorRoad() {
		cost -= 50
	}
	if options.Greenways {
		if edge.Type.IsGreenway() {
			cost -= 100
		}
		if edge.Foot {
			cost = math.Min(0, cost)
		}
	}
	return math.Max(0, cost)
}

func _SpeedCost(edge attr.EdgeAttribs, options *WeightingOptions) float64 {
	if edge.Maxspeed > 0 && int(edge.Maxspeed) <= options.SpeedRestriction {
		return 0
	}
	return 100
}
