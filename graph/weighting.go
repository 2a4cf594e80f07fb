package graph

import (
	"fmt"

	. "github.com/ttpr0/go-mosp/util"
)

//*******************************************
// weighting interface
//*******************************************

// Cost vectors of fixed dimension attached to every edge.
type IMultiWeighting interface {
	Dim() int
	EdgeCount() int
	// Returned slice is owned by the weighting and must not be modified.
	GetEdgeCosts(edge int32) []float64
}

//*******************************************
// multi weighting
//*******************************************

var _ IMultiWeighting = &MultiWeighting{}

// Flat edge-major table of cost vectors.
type MultiWeighting struct {
	dim   int
	costs Array[float64]
}

func NewMultiWeighting(edge_count int, dim int) *MultiWeighting {
	return &MultiWeighting{
		dim:   dim,
		costs: NewArray[float64](edge_count * dim),
	}
}

func (self *MultiWeighting) Dim() int {
	return self.dim
}
func (self *MultiWeighting) EdgeCount() int {
	if self.dim == 0 {
		return 0
	}
	return len(self.costs) / self.dim
}
func (self *MultiWeighting) GetEdgeCosts(edge int32) []float64 {
	start := int(edge) * self.dim
	return self.costs[start : start+self.dim : start+self.dim]
}
func (self *MultiWeighting) SetEdgeCosts(edge int32, costs []float64) error {
	if len(costs) != self.dim {
		return fmt.Errorf("%w: edge %v has %v costs, expected %v", ErrDimensionMismatch, edge, len(costs), self.dim)
	}
	copy(self.costs[int(edge)*self.dim:], costs)
	return nil
}
func (self *MultiWeighting) SetEdgeCost(edge int32, dim int, cost float64) {
	self.costs[int(edge)*self.dim+dim] = cost
}

// Returns a copy keeping only the edges with a mapping entry >= 0.
func (self *MultiWeighting) RemapEdges(edge_mapping Array[int32]) *MultiWeighting {
	count := 0
	for _, m := range edge_mapping {
		if m >= 0 {
			count += 1
		}
	}
	weight := NewMultiWeighting(count, self.dim)
	for i, m := range edge_mapping {
		if m < 0 {
			continue
		}
		copy(weight.costs[int(m)*self.dim:], self.GetEdgeCosts(int32(i)))
	}
	return weight
}
