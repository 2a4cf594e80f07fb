package mosp

import (
	"math"
	"strconv"
	"strings"
)

//*******************************************
// cost vector
//*******************************************

// Fixed-arity vector of non-negative costs, one component per objective.
type CostVector []float64

func Zero(k int) CostVector {
	return make(CostVector, k)
}

func Inf(k int) CostVector {
	c := make(CostVector, k)
	for i := range c {
		c[i] = math.Inf(1)
	}
	return c
}

// Componentwise sum as a new vector.
func (self CostVector) Add(other []float64) CostVector {
	sum := make(CostVector, len(self))
	for i := range self {
		sum[i] = self[i] + other[i]
	}
	return sum
}

func (self CostVector) IsFinite() bool {
	for _, c := range self {
		if math.IsInf(c, 0) || math.IsNaN(c) {
			return false
		}
	}
	return true
}

func (self CostVector) Copy() CostVector {
	c := make(CostVector, len(self))
	copy(c, self)
	return c
}

func (self CostVector) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, c := range self {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
	}
	b.WriteByte(']')
	return b.String()
}

//*******************************************
// dominance
//*******************************************

// Reports whether a dominates b: no component of a is larger and at least
// one is smaller.
func Dominates(a, b CostVector) bool {
	strict := false
	for i := range a {
		if a[i] > b[i] {
			return false
		}
		if a[i] < b[i] {
			strict = true
		}
	}
	return strict
}

// Reports whether a dominates or equals b.
func WeaklyDominates(a, b CostVector) bool {
	for i := range a {
		if a[i] > b[i] {
			return false
		}
	}
	return true
}

//*******************************************
// lexicographic order
//*******************************************

// Compares a and b component by component, returns -1, 0 or 1.
func LexCompare(a, b CostVector) int {
	for i := range a {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}

func LexLess(a, b CostVector) bool {
	return LexCompare(a, b) < 0
}
