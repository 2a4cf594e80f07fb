package mosp

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ttpr0/go-mosp/algorithm"
	"github.com/ttpr0/go-mosp/graph"
)

type testEdge struct {
	from  int64
	to    int64
	costs []float64
}

func buildGraph(t *testing.T, k int, nodes []int64, edges []testEdge) *graph.Graph {
	t.Helper()
	builder := graph.NewGraphBuilder(k)
	for _, id := range nodes {
		builder.AddNode(id, [2]float32{})
	}
	for _, e := range edges {
		_, err := builder.AddEdge(e.from, e.to, e.costs...)
		require.NoError(t, err)
	}
	g, err := builder.Build()
	require.NoError(t, err)
	return g
}

func nodeIndex(t *testing.T, g graph.IGraph, id int64) int32 {
	t.Helper()
	node, ok := g.GetNodeIndex(id)
	require.True(t, ok, "node %v", id)
	return node
}

func pathIDs(g graph.IGraph, label *Label) []int64 {
	ids := []int64{}
	for _, node := range label.Path() {
		ids = append(ids, g.GetNodeID(node))
	}
	return ids
}

func scenarioD(t *testing.T) *graph.Graph {
	return buildGraph(t, 3, []int64{0, 1, 2, 3, 4, 5}, []testEdge{
		{0, 1, []float64{1, 0, 2}},
		{0, 3, []float64{3, 3, 0}},
		{0, 2, []float64{2, 2, 2}},
		{2, 3, []float64{1, 0, 0}},
		{2, 4, []float64{10, 10, 10}},
		{1, 3, []float64{2, 1, 1}},
		{3, 4, []float64{2, 1, 0}},
		{3, 5, []float64{5, 5, 5}},
		{4, 5, []float64{2, 2, 0}},
	})
}

// Checks that no label of a node dominates another one and that the cost of
// every label is the sum of the edge costs along its path.
func checkFrontiers(t *testing.T, g graph.IGraph, frontiers *Frontiers) {
	t.Helper()
	edge_costs := map[[2]int32][]float64{}
	for e := 0; e < g.EdgeCount(); e++ {
		edge := g.GetEdge(int32(e))
		edge_costs[[2]int32{edge.NodeA, edge.NodeB}] = g.GetEdgeCosts(int32(e))
	}
	for v := 0; v < g.NodeCount(); v++ {
		labels := frontiers.Get(int32(v))
		for i, a := range labels {
			for j, b := range labels {
				if i != j {
					assert.False(t, Dominates(a.Cost, b.Cost), "node %v: %v dominates %v", v, a, b)
				}
			}
			path := a.Path()
			assert.Equal(t, frontiers.Source(), path[0])
			assert.Equal(t, int32(v), path[len(path)-1])
			sum := Zero(frontiers.Dim())
			for p := 1; p < len(path); p++ {
				costs, ok := edge_costs[[2]int32{path[p-1], path[p]}]
				require.True(t, ok, "no edge %v->%v", path[p-1], path[p])
				sum = sum.Add(costs)
			}
			assert.Equal(t, a.Cost, sum, "path %v", path)
		}
	}
}

func TestScenarioSingleObjective(t *testing.T) {
	g := buildGraph(t, 1, nil, []testEdge{
		{1, 2, []float64{1}},
		{2, 3, []float64{1}},
		{1, 3, []float64{3}},
	})
	frontiers, err := OneToAll(g, nodeIndex(t, g, 1), 1)
	require.NoError(t, err)

	labels := frontiers.Get(nodeIndex(t, g, 3))
	require.Len(t, labels, 1)
	assert.Equal(t, CostVector{2}, labels[0].Cost)
	assert.Equal(t, []int64{1, 2, 3}, pathIDs(g, labels[0]))
	checkFrontiers(t, g, frontiers)
}

func TestScenarioTradeoff(t *testing.T) {
	g := buildGraph(t, 2, nil, []testEdge{
		{1, 2, []float64{1, 1}},
		{2, 1, []float64{1, 1}},
		{1, 3, []float64{1, 1e9}},
		{3, 1, []float64{1, 1e9}},
		{2, 3, []float64{1e5, 1e5}},
		{3, 2, []float64{1e5, 1e5}},
	})
	frontiers, err := OneToAll(g, nodeIndex(t, g, 1), 2)
	require.NoError(t, err)

	node := nodeIndex(t, g, 3)
	labels := frontiers.Get(node)
	require.Len(t, labels, 2)
	assert.Equal(t, CostVector{1, 1e9}, labels[0].Cost)
	assert.Equal(t, []int64{1, 3}, pathIDs(g, labels[0]))
	assert.Equal(t, CostVector{1e5 + 1, 1e5 + 1}, labels[1].Cost)
	assert.Equal(t, []int64{1, 2, 3}, pathIDs(g, frontiers.Latest(node)))
	assert.False(t, Dominates(labels[0].Cost, labels[1].Cost))
	assert.False(t, Dominates(labels[1].Cost, labels[0].Cost))
	assert.Same(t, labels[0], frontiers.Best(node))
	checkFrontiers(t, g, frontiers)
}

func TestScenarioUnreachable(t *testing.T) {
	g := buildGraph(t, 2, []int64{0, 1, 2}, []testEdge{
		{0, 1, []float64{1, 2}},
		{2, 0, []float64{1, 1}},
	})
	frontiers, err := OneToAll(g, 0, 2)
	require.NoError(t, err)

	assert.True(t, frontiers.IsReachable(1))
	assert.False(t, frontiers.IsReachable(2))
	assert.Empty(t, frontiers.Get(2))
	assert.Nil(t, frontiers.Best(2))
	assert.Nil(t, frontiers.Latest(2))
	assert.Nil(t, frontiers.Get(17))
	assert.Equal(t, 2, frontiers.Count())
}

func TestScenarioThreeObjectives(t *testing.T) {
	g := scenarioD(t)
	frontiers, err := OneToAll(g, 0, 3)
	require.NoError(t, err)

	type result struct {
		cost CostVector
		path []int32
	}
	expected := map[int32][]result{
		0: {{CostVector{0, 0, 0}, []int32{0}}},
		1: {{CostVector{1, 0, 2}, []int32{0, 1}}},
		2: {{CostVector{2, 2, 2}, []int32{0, 2}}},
		3: {
			{CostVector{3, 1, 3}, []int32{0, 1, 3}},
			{CostVector{3, 2, 2}, []int32{0, 2, 3}},
			{CostVector{3, 3, 0}, []int32{0, 3}},
		},
		4: {
			{CostVector{5, 2, 3}, []int32{0, 1, 3, 4}},
			{CostVector{5, 3, 2}, []int32{0, 2, 3, 4}},
			{CostVector{5, 4, 0}, []int32{0, 3, 4}},
		},
		5: {
			{CostVector{7, 4, 3}, []int32{0, 1, 3, 4, 5}},
			{CostVector{7, 5, 2}, []int32{0, 2, 3, 4, 5}},
			{CostVector{7, 6, 0}, []int32{0, 3, 4, 5}},
		},
	}
	for node, want := range expected {
		labels := frontiers.Get(node)
		require.Len(t, labels, len(want), "node %v", node)
		for i, w := range want {
			assert.Equal(t, w.cost, labels[i].Cost, "node %v label %v", node, i)
			assert.Equal(t, w.path, labels[i].Path(), "node %v label %v", node, i)
		}
	}
	assert.Equal(t, 14, frontiers.Count())
	stats := frontiers.Stats()
	assert.Equal(t, 14, stats.Iterations)
	assert.Equal(t, 14, stats.Settled)
	assert.GreaterOrEqual(t, stats.Pushed, stats.Settled)
	checkFrontiers(t, g, frontiers)
}

func TestIsolatedSource(t *testing.T) {
	g := buildGraph(t, 2, []int64{5, 6}, []testEdge{
		{6, 5, []float64{1, 1}},
	})
	frontiers, err := OneToAll(g, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, frontiers.Count())
	assert.Equal(t, CostVector{0, 0}, frontiers.Best(0).Cost)
	assert.Equal(t, []int32{0}, frontiers.Best(0).Path())
	assert.False(t, frontiers.IsReachable(1))
}

func TestInvalidInput(t *testing.T) {
	valid := buildGraph(t, 2, nil, []testEdge{{0, 1, []float64{1, 1}}})
	tests := []struct {
		name   string
		g      graph.IGraph
		source int32
		k      int
		err    error
	}{
		{"nil graph", nil, 0, 2, ErrNilGraph},
		{"zero objectives", valid, 0, 0, ErrBadDimension},
		{"missing source", valid, 9, 2, ErrSourceNotFound},
		{"negative source", valid, -1, 2, ErrSourceNotFound},
		{"arity mismatch", valid, 0, 3, ErrDimensionMismatch},
		{"negative cost", buildGraph(t, 2, nil, []testEdge{{0, 1, []float64{1, 1}}, {1, 2, []float64{1, -0.5}}}), 0, 2, ErrNegativeCost},
		{"nan cost", buildGraph(t, 1, nil, []testEdge{{0, 1, []float64{math.NaN()}}}), 0, 1, ErrInvalidCost},
		{"infinite cost", buildGraph(t, 1, nil, []testEdge{{0, 1, []float64{math.Inf(1)}}}), 0, 1, ErrInvalidCost},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frontiers, err := OneToAll(tt.g, tt.source, tt.k)
			assert.ErrorIs(t, err, tt.err)
			assert.True(t, IsPreconditionError(err))
			assert.Nil(t, frontiers)
		})
	}
}

func TestZeroCostCycles(t *testing.T) {
	g := buildGraph(t, 2, []int64{0, 1, 2}, []testEdge{
		{0, 1, []float64{0, 0}},
		{1, 0, []float64{0, 0}},
		{1, 2, []float64{1, 0}},
		{2, 1, []float64{0, 0}},
		{2, 2, []float64{0, 0}},
		{0, 2, []float64{0, 3}},
	})
	frontiers, err := OneToAll(g, 0, 2)
	require.NoError(t, err)
	assert.Len(t, frontiers.Get(0), 1)
	assert.Len(t, frontiers.Get(1), 1)
	require.Len(t, frontiers.Get(2), 2)
	assert.Equal(t, CostVector{0, 3}, frontiers.Get(2)[0].Cost)
	assert.Equal(t, CostVector{1, 0}, frontiers.Get(2)[1].Cost)
	checkFrontiers(t, g, frontiers)
}

func TestParallelEdges(t *testing.T) {
	g := buildGraph(t, 2, []int64{0, 1}, []testEdge{
		{0, 1, []float64{1, 4}},
		{0, 1, []float64{4, 1}},
		{0, 1, []float64{1, 4}},
		{0, 1, []float64{5, 5}},
	})
	frontiers, err := OneToAll(g, 0, 2)
	require.NoError(t, err)
	labels := frontiers.Get(1)
	require.Len(t, labels, 2)
	assert.Equal(t, CostVector{1, 4}, labels[0].Cost)
	assert.Equal(t, CostVector{4, 1}, labels[1].Cost)
}

//*******************************************
// randomized comparisons
//*******************************************

func randomGraph(t *testing.T, rng *rand.Rand, n int, m int, k int) *graph.Graph {
	nodes := make([]int64, n)
	for i := range nodes {
		nodes[i] = int64(i)
	}
	seen := map[[2]int64]bool{}
	edges := []testEdge{}
	for len(edges) < m {
		from := int64(rng.Intn(n))
		to := int64(rng.Intn(n))
		if from == to || seen[[2]int64{from, to}] {
			continue
		}
		seen[[2]int64{from, to}] = true
		costs := make([]float64, k)
		for i := range costs {
			costs[i] = float64(rng.Intn(6))
		}
		edges = append(edges, testEdge{from, to, costs})
	}
	return buildGraph(t, k, nodes, edges)
}

// Pareto-optimal distinct cost vectors of all simple paths from source.
func bruteForcePareto(g graph.IGraph, source int32, k int) [][]CostVector {
	all := make([][]CostVector, g.NodeCount())
	on_path := make([]bool, g.NodeCount())
	explorer := g.GetGraphExplorer()
	var visit func(node int32, cost CostVector)
	visit = func(node int32, cost CostVector) {
		all[node] = append(all[node], cost)
		on_path[node] = true
		explorer.ForAdjacentEdges(node, graph.FORWARD, func(ref graph.EdgeRef) {
			if on_path[ref.OtherID] {
				return
			}
			visit(ref.OtherID, cost.Add(explorer.GetEdgeCosts(ref)))
		})
		on_path[node] = false
	}
	visit(source, Zero(k))

	pareto := make([][]CostVector, g.NodeCount())
	for node, costs := range all {
		for i, c := range costs {
			keep := true
			for j, o := range costs {
				if Dominates(o, c) || (j < i && LexCompare(o, c) == 0) {
					keep = false
					break
				}
			}
			if keep {
				pareto[node] = append(pareto[node], c)
			}
		}
		sort.Slice(pareto[node], func(a, b int) bool {
			return LexLess(pareto[node][a], pareto[node][b])
		})
	}
	return pareto
}

func TestRandomGraphsMatchBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for run := 0; run < 40; run++ {
		k := 2 + run%2
		g := randomGraph(t, rng, 7, 10+rng.Intn(12), k)
		source := int32(rng.Intn(g.NodeCount()))
		frontiers, err := OneToAll(g, source, k)
		require.NoError(t, err)
		checkFrontiers(t, g, frontiers)

		want := bruteForcePareto(g, source, k)
		for v := 0; v < g.NodeCount(); v++ {
			got := []CostVector{}
			for _, l := range frontiers.Get(int32(v)) {
				got = append(got, l.Cost)
			}
			if len(want[v]) == 0 {
				assert.Empty(t, got, "run %v node %v", run, v)
				continue
			}
			// settled in lexicographic order
			assert.Equal(t, want[v], got, "run %v node %v", run, v)
		}
	}
}

func TestSingleObjectiveMatchesDijkstra(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for run := 0; run < 20; run++ {
		g := randomGraph(t, rng, 12, 30, 1)
		frontiers, err := OneToAll(g, 0, 1)
		require.NoError(t, err)
		dists, err := algorithm.CalcDijkstra(g, 0, 0, math.Inf(1))
		require.NoError(t, err)
		for v, d := range dists {
			if math.IsInf(d, 1) {
				assert.False(t, frontiers.IsReachable(int32(v)))
				continue
			}
			labels := frontiers.Get(int32(v))
			require.Len(t, labels, 1)
			assert.Equal(t, d, labels[0].Cost[0])
		}
		checkFrontiers(t, g, frontiers)
	}
}

func TestBestMatchesIdealPoint(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	g := randomGraph(t, rng, 10, 25, 3)
	frontiers, err := OneToAll(g, 0, 3)
	require.NoError(t, err)
	ideal, err := algorithm.CalcIdealPoints(g, 0)
	require.NoError(t, err)
	for v := 0; v < g.NodeCount(); v++ {
		labels := frontiers.Get(int32(v))
		if len(labels) == 0 {
			assert.True(t, math.IsInf(ideal[v*3], 1))
			continue
		}
		for i := 0; i < 3; i++ {
			min_cost := math.Inf(1)
			for _, l := range labels {
				min_cost = math.Min(min_cost, l.Cost[i])
			}
			assert.Equal(t, ideal[v*3+i], min_cost, "node %v objective %v", v, i)
		}
		// first settled label is shortest in the first objective
		assert.Equal(t, ideal[v*3], labels[0].Cost[0])
	}
}

//*******************************************
// options
//*******************************************

func TestPruneLatest(t *testing.T) {
	g := scenarioD(t)
	full, err := OneToAll(g, 0, 3)
	require.NoError(t, err)
	latest, err := OneToAll(g, 0, 3, WithPruning(PruneLatest))
	require.NoError(t, err)
	for v := int32(0); v < int32(g.NodeCount()); v++ {
		assert.Equal(t, full.Best(v).Cost, latest.Best(v).Cost)
		assert.GreaterOrEqual(t, len(latest.Get(v)), len(full.Get(v)))
	}
}

func TestMaxIterations(t *testing.T) {
	g := scenarioD(t)
	frontiers, err := OneToAll(g, 0, 3, WithMaxIterations(3))
	assert.ErrorIs(t, err, ErrBudgetExceeded)
	assert.False(t, IsPreconditionError(err))
	require.NotNil(t, frontiers)
	assert.Equal(t, 3, frontiers.Count())
	assert.True(t, frontiers.IsReachable(0))

	frontiers, err = OneToAll(g, 0, 3, WithMaxIterations(14))
	require.NoError(t, err)
	assert.Equal(t, 14, frontiers.Count())
}

func TestCanceled(t *testing.T) {
	g := scenarioD(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	frontiers, err := OneToAll(g, 0, 3, WithContext(ctx))
	assert.ErrorIs(t, err, ErrCanceled)
	assert.True(t, errors.Is(err, context.Canceled))
	require.NotNil(t, frontiers)
	assert.Equal(t, 0, frontiers.Count())
}

func TestPruningText(t *testing.T) {
	var p Pruning
	require.NoError(t, p.UnmarshalText([]byte("latest")))
	assert.Equal(t, PruneLatest, p)
	text, err := p.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "latest", string(text))

	var perr *PruningError
	assert.ErrorAs(t, p.UnmarshalText([]byte("sometimes")), &perr)
}
