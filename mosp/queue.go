package mosp

import (
	"container/heap"
)

//*******************************************
// candidate queue
//*******************************************

type _QueueEntry struct {
	label *Label
	index int
}

type _QueueItems []*_QueueEntry

func (self _QueueItems) Len() int {
	return len(self)
}
func (self _QueueItems) Less(i, j int) bool {
	return precedes(self[i].label, self[j].label)
}
func (self _QueueItems) Swap(i, j int) {
	self[i], self[j] = self[j], self[i]
	self[i].index = i
	self[j].index = j
}
func (self *_QueueItems) Push(x any) {
	entry := x.(*_QueueEntry)
	entry.index = len(*self)
	*self = append(*self, entry)
}
func (self *_QueueItems) Pop() any {
	old := *self
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil
	entry.index = -1
	*self = old[:n-1]
	return entry
}

// Total order of candidates: lexicographic on the ordering key, ties go to the
// label inserted first.
func precedes(a, b *Label) bool {
	c := LexCompare(a.key, b.key)
	if c != 0 {
		return c < 0
	}
	return a.seq < b.seq
}

// Min-queue holding at most one candidate label per node.
type CandidateQueue struct {
	items   _QueueItems
	entries []*_QueueEntry
	seq     uint64
}

func NewCandidateQueue(node_count int) *CandidateQueue {
	return &CandidateQueue{
		items:   make(_QueueItems, 0, 16),
		entries: make([]*_QueueEntry, node_count),
	}
}

func (self *CandidateQueue) Len() int {
	return self.items.Len()
}

// Queued candidate of node, nil if there is none.
func (self *CandidateQueue) Get(node int32) *Label {
	entry := self.entries[node]
	if entry == nil {
		return nil
	}
	return entry.label
}

// Inserts label as candidate of its node.
func (self *CandidateQueue) Push(label *Label) {
	self.seq += 1
	label.seq = self.seq
	entry := &_QueueEntry{label: label}
	self.entries[label.Node] = entry
	heap.Push(&self.items, entry)
}

// Inserts label if its node has no candidate or label precedes the queued one.
//
// Returns whether label was inserted and whether it replaced another candidate.
func (self *CandidateQueue) PushOrReplace(label *Label) (bool, bool) {
	entry := self.entries[label.Node]
	if entry == nil {
		self.Push(label)
		return true, false
	}
	self.seq += 1
	label.seq = self.seq
	if !precedes(label, entry.label) {
		return false, false
	}
	entry.label = label
	heap.Fix(&self.items, entry.index)
	return true, true
}

// Removes and returns the smallest candidate.
func (self *CandidateQueue) Pop() (*Label, bool) {
	if self.items.Len() == 0 {
		return nil, false
	}
	entry := heap.Pop(&self.items).(*_QueueEntry)
	self.entries[entry.label.Node] = nil
	return entry.label, true
}
