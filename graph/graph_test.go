package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/krypt-n/vroom/graph"
)

func TestAddEdgeIncrementsDegreeOfBothEndpoints(t *testing.T) {
	g := graph.NewGraph(3)
	g.AddEdge(0, 1, 5)
	require.Equal(t, 1, g.Degree(0))
	require.Equal(t, 1, g.Degree(1))
	require.Equal(t, 0, g.Degree(2))
}

func TestAddEdgeAllowsParallelEdges(t *testing.T) {
	g := graph.NewGraph(2)
	g.AddEdge(0, 1, 5)
	g.AddEdge(0, 1, 5)
	require.Equal(t, 2, g.Degree(0))
	require.Equal(t, 2, g.Degree(1))
}

func TestRemoveEdgeDeletesExactlyOneParallelCopy(t *testing.T) {
	g := graph.NewGraph(2)
	g.AddEdge(0, 1, 5)
	g.AddEdge(0, 1, 7)
	require.NoError(t, g.RemoveEdge(0, 1))
	require.Equal(t, 1, g.Degree(0))
	require.Equal(t, 1, g.Degree(1))
}

func TestRemoveEdgeNotFound(t *testing.T) {
	g := graph.NewGraph(2)
	require.ErrorIs(t, g.RemoveEdge(0, 1), graph.ErrEdgeNotFound)
}

func TestOddDegreeVertices(t *testing.T) {
	g := graph.NewGraph(4)
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 1)
	require.Equal(t, []int{0, 3}, g.OddDegreeVertices())
}

func TestAdjacencySortedByWeightThenEndpoints(t *testing.T) {
	g := graph.NewGraph(4)
	g.AddEdge(0, 3, 5)
	g.AddEdge(0, 2, 1)
	g.AddEdge(0, 1, 1)
	adj := g.Adjacency(0)
	require.Len(t, adj, 3)
	require.Equal(t, 1, adj[0].V)
	require.Equal(t, 2, adj[1].V)
	require.Equal(t, 3, adj[2].V)
}

func TestFromMatrixBuildsCompleteGraph(t *testing.T) {
	dist := func(i, j int) int64 { return int64(i + j) }
	g := graph.FromMatrix(4, dist)
	for v := 0; v < 4; v++ {
		require.Equal(t, 3, g.Degree(v))
	}
}

func TestInducedSubgraphUsesDistFunc(t *testing.T) {
	dist := func(i, j int) int64 { return int64((i - j) * (i - j)) }
	g := graph.InducedSubgraph([]int{2, 5, 9}, dist)
	require.Equal(t, 3, g.N())
	adj := g.Adjacency(0)
	require.Len(t, adj, 2)
}
