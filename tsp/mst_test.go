package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/krypt-n/vroom/graph"
	"github.com/krypt-n/vroom/tsp"
)

func TestMinimumSpanningTreeWeight(t *testing.T) {
	// A 4-cycle with unit-weight sides and heavier diagonals: the MST must
	// be 3 of the 4 sides (total 3), never a diagonal.
	dist := func(i, j int) int64 {
		sides := map[[2]int]int64{
			{0, 1}: 1, {1, 2}: 1, {2, 3}: 1, {0, 3}: 1,
			{0, 2}: 5, {1, 3}: 5,
		}
		lo, hi := i, j
		if lo > hi {
			lo, hi = hi, lo
		}
		return sides[[2]int{lo, hi}]
	}
	g := graph.FromMatrix(4, dist)
	tree, weight := tsp.MinimumSpanningTree(g)
	require.Equal(t, int64(3), weight)
	require.Equal(t, 3, countEdges(tree))
}

func TestMinimumSpanningTreeTieBreakIsDeterministic(t *testing.T) {
	dist := func(i, j int) int64 { return 1 }
	g := graph.FromMatrix(5, dist)
	tree1, w1 := tsp.MinimumSpanningTree(g)
	tree2, w2 := tsp.MinimumSpanningTree(g)
	require.Equal(t, w1, w2)
	require.Equal(t, countEdges(tree1), countEdges(tree2))
	for v := 0; v < 5; v++ {
		require.Equal(t, tree1.Degree(v), tree2.Degree(v))
	}
}

func TestMinimumSpanningTreeTrivialBelowTwoVertices(t *testing.T) {
	g := graph.NewGraph(1)
	tree, weight := tsp.MinimumSpanningTree(g)
	require.Equal(t, int64(0), weight)
	require.Equal(t, 0, countEdges(tree))
}

func countEdges(g *graph.Graph) int {
	total := 0
	for v := 0; v < g.N(); v++ {
		total += g.Degree(v)
	}
	return total / 2
}
