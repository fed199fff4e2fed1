package tsp

import (
	"sort"

	"github.com/krypt-n/vroom/graph"
)

// oddEdge is a candidate matching edge between two odd-degree vertices,
// named by their original (matrix) indices.
type oddEdge struct {
	u, v int
	w    int64
}

// GreedyMatching computes a (not necessarily minimum-weight) perfect
// matching over odd. It builds the complete induced subgraph over odd via
// graph.InducedSubgraph, reads every edge back out (translating the
// subgraph's local 0..k-1 indices to the original vertex indices named in
// odd), sorts ascending by (weight, lower endpoint, higher endpoint), then
// walks the sorted list accepting an edge iff both endpoints are still
// unmatched, stopping once len(odd)/2 edges are accepted.
//
// The result is not guaranteed optimal — the greedy choice can leave a
// cheaper global matching on the table — but it is deterministic, which is
// what the surrounding Christofides construction and its end-to-end tests
// depend on.
//
// Precondition: len(odd) is even (guaranteed by any graph, since the sum of
// degrees is even, so the count of odd-degree vertices is always even).
//
// Complexity: O(k^2 log k) time, k = len(odd), dominated by the sort.
func GreedyMatching(odd []int, dist graph.DistanceFunc) [][2]int {
	k := len(odd)
	if k == 0 {
		return nil
	}

	sub := graph.InducedSubgraph(odd, dist)
	edges := make([]oddEdge, 0, k*(k-1)/2)
	for a := 0; a < k; a++ {
		for _, e := range sub.EdgesFrom(a) {
			if e.U > e.V {
				continue
			}
			u, v := odd[e.U], odd[e.V]
			if u > v {
				u, v = v, u
			}
			edges = append(edges, oddEdge{u: u, v: v, w: e.W})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].w != edges[j].w {
			return edges[i].w < edges[j].w
		}
		if edges[i].u != edges[j].u {
			return edges[i].u < edges[j].u
		}
		return edges[i].v < edges[j].v
	})

	matched := make(map[int]bool, k)
	pairs := make([][2]int, 0, k/2)
	for _, e := range edges {
		if len(pairs) == k/2 {
			break
		}
		if matched[e.u] || matched[e.v] {
			continue
		}
		matched[e.u] = true
		matched[e.v] = true
		pairs = append(pairs, [2]int{e.u, e.v})
	}
	return pairs
}
