package mosp

import (
	"fmt"
)

//*******************************************
// label
//*******************************************

// Path to Node with accumulated cost.
//
// Labels are immutable. Pred always refers to a label settled before this one,
// it is nil only for the source label.
type Label struct {
	Node int32
	// edge from Pred.Node to Node, -1 for the source label
	Edge int32
	Cost CostVector
	Pred *Label

	// ordering key, equal to Cost unless scaled costs drive the search
	key CostVector
	seq uint64
	// set once a later settled label of Node dominates Cost
	dominated bool
}

// Sentinel label with infinite cost for node.
func Sentinel(node int32, k int) *Label {
	cost := Inf(k)
	return &Label{
		Node: node,
		Edge: -1,
		Cost: cost,
		key:  cost,
	}
}

func (self *Label) IsSentinel() bool {
	return self.Pred == nil && !self.Cost.IsFinite()
}

// Number of edges on the path.
func (self *Label) Hops() int {
	hops := 0
	for curr := self.Pred; curr != nil; curr = curr.Pred {
		hops += 1
	}
	return hops
}

// Node ids from the source to Node.
func (self *Label) Path() []int32 {
	path := make([]int32, self.Hops()+1)
	i := len(path) - 1
	for curr := self; curr != nil; curr = curr.Pred {
		path[i] = curr.Node
		i -= 1
	}
	return path
}

// Edge ids from the source to Node.
func (self *Label) Edges() []int32 {
	edges := make([]int32, self.Hops())
	i := len(edges) - 1
	for curr := self; curr.Pred != nil; curr = curr.Pred {
		edges[i] = curr.Edge
		i -= 1
	}
	return edges
}

func (self *Label) String() string {
	return fmt.Sprintf("%v%v", self.Cost, self.Path())
}

// Extends the label along edge to node.
func (self *Label) extend(edge int32, node int32, raw []float64, scaled []float64) *Label {
	cost := self.Cost.Add(raw)
	key := cost
	if scaled != nil {
		key = self.key.Add(scaled)
	}
	return &Label{
		Node: node,
		Edge: edge,
		Cost: cost,
		Pred: self,
		key:  key,
	}
}
