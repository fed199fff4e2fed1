// Package tsp implements the construction heuristic (Christofides-style):
// minimum spanning tree, greedy odd-vertex matching, Eulerian traversal and
// shortcutting, composed by Christofides into a seed Hamiltonian tour.
//
// Design:
//   - Deterministic tie-breaks everywhere a choice is underdetermined by
//     weight alone, so that repeated runs on the same input produce byte-
//     identical tours — this module is compared by exact tour equality in
//     end-to-end tests.
//   - Sentinel errors only; no panics on valid input.
package tsp

import (
	"math"

	"github.com/krypt-n/vroom/graph"
)

// MinimumSpanningTree runs Prim's algorithm on g, starting from vertex 0,
// and returns the MST as its own Graph (N-1 undirected edges) together with
// its total weight.
//
// Tie-break: among equally light crossing edges, the one whose endpoint
// already in the tree has the lowest index wins; if that is also tied, the
// one whose endpoint outside the tree has the lowest index wins. This is
// achieved by relaxing bestFrom[v] to prefer a lower tree-endpoint on ties,
// then scanning candidates in (weight, bestFrom[v], v) order.
//
// Complexity: O(n^2) time (g is assumed complete, as built by
// graph.FromMatrix), O(n) extra space.
func MinimumSpanningTree(g *graph.Graph) (*graph.Graph, int64) {
	n := g.N()
	tree := graph.NewGraph(n)
	if n < 2 {
		return tree, 0
	}

	inTree := make([]bool, n)
	bestWeight := make([]int64, n)
	bestFrom := make([]int, n)
	for v := 1; v < n; v++ {
		bestWeight[v] = math.MaxInt64
		bestFrom[v] = -1
	}
	inTree[0] = true
	relax(g, 0, inTree, bestWeight, bestFrom)

	var total int64
	for added := 1; added < n; added++ {
		u := -1
		for v := 0; v < n; v++ {
			if inTree[v] {
				continue
			}
			if u == -1 || better(bestWeight[v], bestFrom[v], v, bestWeight[u], bestFrom[u], u) {
				u = v
			}
		}
		tree.AddEdge(u, bestFrom[u], bestWeight[u])
		total += bestWeight[u]
		inTree[u] = true
		relax(g, u, inTree, bestWeight, bestFrom)
	}
	return tree, total
}

// relax updates bestWeight/bestFrom for every vertex still outside the tree
// after u has just been added, preferring a lower tree-endpoint on weight
// ties (the first half of the MST tie-break rule).
func relax(g *graph.Graph, u int, inTree []bool, bestWeight []int64, bestFrom []int) {
	for _, e := range g.EdgesFrom(u) {
		v := e.V
		if inTree[v] {
			continue
		}
		if e.W < bestWeight[v] || (e.W == bestWeight[v] && u < bestFrom[v]) {
			bestWeight[v] = e.W
			bestFrom[v] = u
		}
	}
}

// better reports whether candidate (w1, from1, v1) should be preferred over
// (w2, from2, v2) as the next crossing edge to add: strictly lighter wins;
// on a weight tie, the lower tree-endpoint wins; on a further tie, the
// lower outside endpoint wins.
func better(w1 int64, from1, v1 int, w2 int64, from2, v2 int) bool {
	if w1 != w2 {
		return w1 < w2
	}
	if from1 != from2 {
		return from1 < from2
	}
	return v1 < v2
}
