package mosp

import (
	"time"
)

//*******************************************
// pruning policy
//*******************************************

// Settled labels a new label is checked against.
type Pruning byte

const (
	// all settled labels of the node
	PruneFrontier Pruning = 0
	// only the most recently settled label of the node
	PruneLatest Pruning = 1
)

func (self Pruning) String() string {
	switch self {
	case PruneFrontier:
		return "frontier"
	case PruneLatest:
		return "latest"
	default:
		return "unknown"
	}
}

func ParsePruning(s string) (Pruning, bool) {
	switch s {
	case "frontier", "":
		return PruneFrontier, true
	case "latest":
		return PruneLatest, true
	default:
		return PruneFrontier, false
	}
}

func (self Pruning) MarshalText() ([]byte, error) {
	return []byte(self.String()), nil
}

func (self *Pruning) UnmarshalText(text []byte) error {
	p, ok := ParsePruning(string(text))
	if !ok {
		return &PruningError{Value: string(text)}
	}
	*self = p
	return nil
}

type PruningError struct {
	Value string
}

func (self *PruningError) Error() string {
	return "mosp: unknown pruning " + self.Value
}

//*******************************************
// frontier store
//*******************************************

// Run statistics.
type Stats struct {
	// main loop iterations, one per settled label
	Iterations int
	Pushed     int
	Replaced   int
	// labels discarded because a settled label dominates or equals them
	Pruned  int
	Settled int
	// settled labels removed again because a later settled label dominates them,
	// only happens when scaled costs order the search
	Dropped  int
	Duration time.Duration
}

// Settled labels of every node in the order they were settled.
//
// Excluding equal costs the labels of a node are mutually non-dominated and
// sorted lexicographically by their ordering key, the costs unless scaled costs
// drove the search. Unreachable nodes have no labels.
type Frontiers struct {
	k       int
	source  int32
	pruning Pruning
	labels  [][]*Label
	stats   Stats
}

func newFrontiers(node_count int, k int, source int32, pruning Pruning) *Frontiers {
	return &Frontiers{
		k:       k,
		source:  source,
		pruning: pruning,
		labels:  make([][]*Label, node_count),
	}
}

func (self *Frontiers) Dim() int {
	return self.k
}
func (self *Frontiers) Source() int32 {
	return self.source
}
func (self *Frontiers) NodeCount() int {
	return len(self.labels)
}

// Settled labels of node, must not be modified.
func (self *Frontiers) Get(node int32) []*Label {
	if node < 0 || int(node) >= len(self.labels) {
		return nil
	}
	return self.labels[node]
}

func (self *Frontiers) IsReachable(node int32) bool {
	return len(self.Get(node)) > 0
}

// First settled label of node, the one with the smallest ordering key.
func (self *Frontiers) Best(node int32) *Label {
	labels := self.Get(node)
	if len(labels) == 0 {
		return nil
	}
	return labels[0]
}

// Last settled label of node.
func (self *Frontiers) Latest(node int32) *Label {
	labels := self.Get(node)
	if len(labels) == 0 {
		return nil
	}
	return labels[len(labels)-1]
}

// Total number of labels in all frontiers.
func (self *Frontiers) Count() int {
	return self.stats.Settled - self.stats.Dropped
}

func (self *Frontiers) Stats() Stats {
	return self.stats
}

// Appends label to the frontier of its node.
//
// With drop set earlier labels of the node dominated by label are marked, they
// stay in place until compact so that edge cursors remain valid.
func (self *Frontiers) settle(label *Label, drop bool) {
	labels := self.labels[label.Node]
	if drop {
		for _, l := range labels {
			if !l.dominated && Dominates(label.Cost, l.Cost) {
				l.dominated = true
				self.stats.Dropped += 1
			}
		}
	}
	self.labels[label.Node] = append(labels, label)
	self.stats.Settled += 1
}

// Removes marked labels from every frontier.
func (self *Frontiers) compact() {
	if self.stats.Dropped == 0 {
		return
	}
	for node, labels := range self.labels {
		kept := labels[:0]
		for _, l := range labels {
			if !l.dominated {
				kept = append(kept, l)
			}
		}
		for i := len(kept); i < len(labels); i++ {
			labels[i] = nil
		}
		self.labels[node] = kept
	}
}

// Reports whether a settled label of node dominates or equals cost.
func (self *Frontiers) isDominated(node int32, cost CostVector) bool {
	labels := self.labels[node]
	if len(labels) == 0 {
		return false
	}
	if self.pruning == PruneLatest {
		return WeaklyDominates(labels[len(labels)-1].Cost, cost)
	}
	for _, l := range labels {
		if !l.dominated && WeaklyDominates(l.Cost, cost) {
			return true
		}
	}
	return false
}
