package tsp

import (
	"github.com/krypt-n/vroom/graph"
	"github.com/krypt-n/vroom/matrix"
)

// Christofides builds a seed Hamiltonian tour (ordered-sequence form,
// starting at vertex 0) over dist by composing, in order:
//
//  1. MinimumSpanningTree — component C.
//  2. GreedyMatching over the MST's odd-degree vertices — component D.
//  3. EulerianCircuit over MST ∪ matching, starting at vertex 0, then
//     ShortcutToHamiltonian — component E.
//
// Returns ErrEmptyProblem if dist.Size() < 2.
//
// Complexity: O(n^2), dominated by building the complete graph and the
// matching candidate set.
func Christofides(dist *matrix.DistanceMatrix) ([]int, error) {
	n := dist.Size()
	if n < 2 {
		return nil, ErrEmptyProblem
	}
	if n == 2 {
		return []int{0, 1}, nil
	}

	complete := graph.FromMatrix(n, dist.At)
	mst, _ := MinimumSpanningTree(complete)

	odd := mst.OddDegreeVertices()
	pairs := GreedyMatching(odd, dist.At)

	h := graph.NewGraph(n)
	for v := 0; v < n; v++ {
		for _, e := range mst.EdgesFrom(v) {
			if e.U <= e.V {
				h.AddEdge(e.U, e.V, e.W)
			}
		}
	}
	for _, p := range pairs {
		h.AddEdge(p[0], p[1], dist.At(p[0], p[1]))
	}

	euler := EulerianCircuit(h, 0)
	return ShortcutToHamiltonian(euler, n), nil
}
