package tsp

import "github.com/krypt-n/vroom/graph"

// EulerianCircuit computes one Euler circuit of h (assumed connected with
// every vertex of even degree) by Hierholzer's method, starting and ending
// at start. At each step, among the unused edges incident on the current
// vertex, the one whose other endpoint has the lowest index is taken —
// this is the only place Hierholzer's method is underdetermined, and the
// rule makes the result deterministic.
//
// h is not mutated; the walk operates on an internal copy.
//
// Complexity: O(E) time, O(E) extra space for the working copy.
func EulerianCircuit(h *graph.Graph, start int) []int {
	n := h.N()
	local := graph.NewGraph(n)
	for v := 0; v < n; v++ {
		for _, e := range h.EdgesFrom(v) {
			if e.U <= e.V {
				local.AddEdge(e.U, e.V, e.W)
			}
		}
	}

	var reversed []int
	stack := []int{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		edges := local.EdgesFrom(u)
		if len(edges) == 0 {
			reversed = append(reversed, u)
			stack = stack[:len(stack)-1]
			continue
		}
		next := edges[0].V
		for _, e := range edges[1:] {
			if e.V < next {
				next = e.V
			}
		}
		_ = local.RemoveEdge(u, next)
		stack = append(stack, next)
	}

	// The backtrack-append order is the reverse of the forward traversal.
	circuit := make([]int, len(reversed))
	for i, v := range reversed {
		circuit[len(reversed)-1-i] = v
	}
	return circuit
}

// ShortcutToHamiltonian walks an Eulerian vertex sequence and emits each
// vertex the first time it appears, skipping subsequent occurrences. The
// result is a Hamiltonian tour in ordered-sequence form, starting at
// euler[0].
//
// Complexity: O(len(euler)) time, O(n) space.
func ShortcutToHamiltonian(euler []int, n int) []int {
	seen := make([]bool, n)
	tour := make([]int, 0, n)
	for _, v := range euler {
		if !seen[v] {
			seen[v] = true
			tour = append(tour, v)
		}
	}
	return tour
}
