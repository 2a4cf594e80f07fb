package util

import (
	"golang.org/x/exp/constraints"
)

//*******************************************
// priority queue
//*******************************************

type _PQItem[T any, P constraints.Ordered] struct {
	item     T
	priority P
}

// Binary min-heap. Items with equal priority leave in unspecified order.
type PriorityQueue[T any, P constraints.Ordered] struct {
	items []_PQItem[T, P]
}

func NewPriorityQueue[T any, P constraints.Ordered](cap int) PriorityQueue[T, P] {
	return PriorityQueue[T, P]{
		items: make([]_PQItem[T, P], 0, cap),
	}
}

func (self *PriorityQueue[T, P]) Enqueue(item T, priority P) {
	self.items = append(self.items, _PQItem[T, P]{item, priority})
	self._Up(len(self.items) - 1)
}

func (self *PriorityQueue[T, P]) Dequeue() (T, bool) {
	if len(self.items) == 0 {
		var t T
		return t, false
	}
	top := self.items[0]
	last := len(self.items) - 1
	self.items[0] = self.items[last]
	self.items = self.items[:last]
	if last > 0 {
		self._Down(0)
	}
	return top.item, true
}

func (self *PriorityQueue[T, P]) Peek() (T, P, bool) {
	if len(self.items) == 0 {
		var t T
		var p P
		return t, p, false
	}
	return self.items[0].item, self.items[0].priority, true
}

func (self *PriorityQueue[T, P]) Length() int {
	return len(self.items)
}

func (self *PriorityQueue[T, P]) _Up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if self.items[parent].priority <= self.items[i].priority {
			break
		}
		self.items[parent], self.items[i] = self.items[i], self.items[parent]
		i = parent
	}
}

func (self *PriorityQueue[T, P]) _Down(i int) {
	n := len(self.items)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		smallest := left
		if right := left + 1; right < n && self.items[right].priority < self.items[left].priority {
			smallest = right
		}
		if self.items[i].priority <= self.items[smallest].priority {
			break
		}
		self.items[i], self.items[smallest] = self.items[smallest], self.items[i]
		i = smallest
	}
}
