package mosp

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDominates(t *testing.T) {
	tests := []struct {
		name string
		a    CostVector
		b    CostVector
		want bool
		weak bool
	}{
		{"smaller in all", CostVector{1, 1}, CostVector{2, 2}, true, true},
		{"smaller in one", CostVector{1, 2}, CostVector{2, 2}, true, true},
		{"equal", CostVector{2, 2}, CostVector{2, 2}, false, true},
		{"tradeoff", CostVector{1, 3}, CostVector{2, 2}, false, false},
		{"larger", CostVector{3, 3}, CostVector{2, 2}, false, false},
		{"single objective", CostVector{0}, CostVector{1}, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dominates(tt.a, tt.b))
			assert.Equal(t, tt.weak, WeaklyDominates(tt.a, tt.b))
		})
	}
}

func TestDominanceIrreflexiveAntisymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		a := CostVector{float64(rng.Intn(4)), float64(rng.Intn(4)), float64(rng.Intn(4))}
		b := CostVector{float64(rng.Intn(4)), float64(rng.Intn(4)), float64(rng.Intn(4))}
		assert.False(t, Dominates(a, a))
		if Dominates(a, b) {
			assert.False(t, Dominates(b, a), "%v and %v", a, b)
			assert.True(t, LexLess(a, b))
		}
	}
}

func TestLexCompare(t *testing.T) {
	assert.Equal(t, -1, LexCompare(CostVector{1, 9}, CostVector{2, 0}))
	assert.Equal(t, 1, LexCompare(CostVector{1, 9}, CostVector{1, 8}))
	assert.Equal(t, 0, LexCompare(CostVector{1, 9}, CostVector{1, 9}))
}

func TestCostVector(t *testing.T) {
	a := CostVector{1, 2}
	sum := a.Add([]float64{0.5, 1})
	assert.Equal(t, CostVector{1.5, 3}, sum)
	assert.Equal(t, CostVector{1, 2}, a)
	assert.True(t, Zero(3).IsFinite())
	assert.False(t, Inf(2).IsFinite())
	assert.Equal(t, "[1.5,3]", sum.String())
}

func TestLabelPath(t *testing.T) {
	source := &Label{Node: 4, Edge: -1, Cost: Zero(1)}
	source.key = source.Cost
	a := source.extend(11, 2, []float64{1}, nil)
	b := a.extend(12, 7, []float64{2}, nil)
	assert.Equal(t, []int32{4}, source.Path())
	assert.Equal(t, []int32{4, 2, 7}, b.Path())
	assert.Equal(t, 2, b.Hops())
	assert.Equal(t, CostVector{3}, b.Cost)
	assert.Equal(t, []int32{4, 2}, a.Path())
	assert.Equal(t, []int32{11, 12}, b.Edges())
	assert.Empty(t, source.Edges())

	s := Sentinel(3, 2)
	assert.True(t, s.IsSentinel())
	assert.False(t, b.IsSentinel())
}
