// Package graph provides the undirected graph view (component B) derived
// from a distance matrix: adjacency queries, odd-degree enumeration, and
// edge mutation, used by the MST and matching stages of Christofides
// construction.
//
// Design:
//   - Vertices are {0,...,n-1}; edges carry an int64 weight.
//   - The graph is a simple multigraph: AddEdge always appends, even if an
//     edge between the same endpoints already exists — this is required to
//     build the Eulerian multigraph H = MST ∪ matching (component E), where
//     a matching edge coinciding with an MST edge must be kept as a second
//     parallel edge, not merged into one.
//   - Adjacency listings are sorted by (weight, lower endpoint, higher
//     endpoint) so that any algorithm consuming them deterministically
//     breaks ties the same way regardless of insertion order.
package graph

import "sort"

// Edge is an undirected edge {U, V} with weight W. Each undirected edge is
// stored twice, once in each endpoint's adjacency list; in the list of
// vertex v, U is always v and V is the other endpoint, so exactly one of
// the two copies satisfies U < V.
type Edge struct {
	U, V int
	W    int64
}

// Graph is an adjacency-list undirected multigraph over vertices
// {0,...,n-1}.
type Graph struct {
	n   int
	adj [][]Edge // adj[v] lists edges incident on v, in insertion order
}

// NewGraph returns an empty graph over n vertices (no edges).
//
// Complexity: O(n).
func NewGraph(n int) *Graph {
	return &Graph{n: n, adj: make([][]Edge, n)}
}

// N returns the vertex count.
func (g *Graph) N() int { return g.n }

// Degree returns the number of edges incident on v (multi-edges counted
// once each).
//
// Complexity: O(1).
func (g *Graph) Degree(v int) int {
	return len(g.adj[v])
}

// AddEdge inserts an undirected edge {u, v} of weight w. It appends to both
// endpoints' adjacency lists; repeated calls with the same endpoints create
// parallel edges (multigraph semantics), required when overlaying a
// matching onto an MST.
//
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int, w int64) {
	g.adj[u] = append(g.adj[u], Edge{U: u, V: v, W: w})
	g.adj[v] = append(g.adj[v], Edge{U: v, V: u, W: w})
}

// RemoveEdge deletes exactly one edge between u and v (whichever copy is
// found first), the counterpart required by Eulerian-circuit extraction
// (Hierholzer's method consumes one parallel edge at a time). Returns
// ErrEdgeNotFound if no such edge exists.
//
// Complexity: O(degree(u) + degree(v)).
func (g *Graph) RemoveEdge(u, v int) error {
	if !removeOne(&g.adj[u], v) {
		return ErrEdgeNotFound
	}
	removeOne(&g.adj[v], u)
	return nil
}

func removeOne(edges *[]Edge, other int) bool {
	for i, e := range *edges {
		if e.V == other {
			*edges = append((*edges)[:i], (*edges)[i+1:]...)
			return true
		}
	}
	return false
}

// Adjacency returns the edges incident on v, sorted ascending by (weight,
// lower neighbor index, higher neighbor index) so that equal-weight ties
// resolve deterministically.
//
// Complexity: O(d log d), d = Degree(v).
func (g *Graph) Adjacency(v int) []Edge {
	out := append([]Edge(nil), g.adj[v]...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].W != out[j].W {
			return out[i].W < out[j].W
		}
		lo := func(e Edge) int {
			if e.U < e.V {
				return e.U
			}
			return e.V
		}
		hi := func(e Edge) int {
			if e.U < e.V {
				return e.V
			}
			return e.U
		}
		if lo(out[i]) != lo(out[j]) {
			return lo(out[i]) < lo(out[j])
		}
		return hi(out[i]) < hi(out[j])
	})
	return out
}

// OddDegreeVertices returns, in ascending order, every vertex whose degree
// is odd.
//
// Complexity: O(n).
func (g *Graph) OddDegreeVertices() []int {
	var odd []int
	for v := 0; v < g.n; v++ {
		if len(g.adj[v])%2 == 1 {
			odd = append(odd, v)
		}
	}
	return odd
}

// EdgesFrom returns a shallow copy of the raw (unsorted) edge list incident
// on v; used by Eulerian-circuit extraction where sort order does not
// matter but repeated calls must not allocate more than necessary.
//
// Complexity: O(degree(v)).
func (g *Graph) EdgesFrom(v int) []Edge {
	return append([]Edge(nil), g.adj[v]...)
}

// DistanceFunc abstracts the read-only distance lookup a graph is built
// from, satisfied by *matrix.DistanceMatrix without introducing an import
// cycle between graph and matrix.
type DistanceFunc func(i, j int) int64

// FromMatrix builds the complete undirected graph over n vertices, with an
// edge of weight dist(i,j) for every pair i<j.
//
// Complexity: O(n^2).
func FromMatrix(n int, dist DistanceFunc) *Graph {
	g := NewGraph(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.AddEdge(i, j, dist(i, j))
		}
	}
	return g
}

// InducedSubgraph returns the complete graph over the given vertex subset,
// renumbered locally: vertex a of the result stands for vertices[a], and
// the edge {a, b} has weight dist(vertices[a], vertices[b]). Weights come
// only from dist, so the induced subgraph used to feed the odd-vertex
// matching step (component D) is always the complete metric subgraph
// over O.
//
// Complexity: O(k^2), k = len(vertices).
func InducedSubgraph(vertices []int, dist DistanceFunc) *Graph {
	k := len(vertices)
	g := NewGraph(k)
	for a := 0; a < k; a++ {
		for b := a + 1; b < k; b++ {
			g.AddEdge(a, b, dist(vertices[a], vertices[b]))
		}
	}
	return g
}
