package algorithm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttpr0/go-mosp/graph"
	. "github.com/ttpr0/go-mosp/util"
)

func buildGraph(t *testing.T, dim int, edges [][]float64) *graph.Graph {
	t.Helper()
	builder := graph.NewGraphBuilder(dim)
	for _, e := range edges {
		_, err := builder.AddEdge(int64(e[0]), int64(e[1]), e[2:]...)
		require.NoError(t, err)
	}
	g, err := builder.Build()
	require.NoError(t, err)
	return g
}

func TestCalcDijkstra(t *testing.T) {
	g := buildGraph(t, 2, [][]float64{
		{0, 1, 1, 9},
		{1, 2, 1, 9},
		{0, 2, 5, 1},
		{2, 3, 1, 1},
	})
	dists, preds, err := CalcShortestPathTree(g, 0, 0, math.Inf(1))
	require.NoError(t, err)
	assert.Equal(t, Array[float64]{0, 1, 2, 3}, dists)
	assert.Equal(t, Array[int32]{-1, 0, 1, 3}, preds)

	dists, err = CalcDijkstra(g, 0, 1, math.Inf(1))
	require.NoError(t, err)
	assert.Equal(t, Array[float64]{0, 9, 1, 2}, dists)

	dists, err = CalcDijkstra(g, 0, 0, 2)
	require.NoError(t, err)
	assert.True(t, math.IsInf(dists[3], 1))

	dists, err = CalcDijkstra(g, 3, 0, math.Inf(1))
	require.NoError(t, err)
	assert.True(t, math.IsInf(dists[0], 1))
}

func TestCalcDijkstraErrors(t *testing.T) {
	g := buildGraph(t, 1, [][]float64{{0, 1, 1}})
	_, err := CalcDijkstra(g, 7, 0, math.Inf(1))
	assert.ErrorIs(t, err, graph.ErrNodeNotFound)
	_, err = CalcDijkstra(g, 0, 1, math.Inf(1))
	assert.ErrorIs(t, err, graph.ErrDimensionMismatch)
}

func TestCalcIdealPoints(t *testing.T) {
	g := buildGraph(t, 2, [][]float64{
		{0, 1, 1, 9},
		{0, 1, 9, 1},
	})
	ideal, err := CalcIdealPoints(g, 0)
	require.NoError(t, err)
	assert.Equal(t, Array[float64]{0, 0, 1, 1}, ideal)
}

func TestConnectedComponents(t *testing.T) {
	g := buildGraph(t, 1, [][]float64{
		{0, 1, 1},
		{2, 1, 1},
		{3, 4, 1},
		{5, 5, 1},
	})
	groups := ConnectedComponents(g)
	assert.Equal(t, Array[int32]{0, 0, 0, 1, 1, 2}, groups)
	assert.Equal(t, int32(0), GetMostCommon(groups))
	assert.Equal(t, List[int32]{3, 4, 5}, NodesOutsideLargestComponent(g))
}

func TestMostCommonTie(t *testing.T) {
	assert.Equal(t, int32(1), GetMostCommon(Array[int32]{2, 2, 1, 1}))
}
