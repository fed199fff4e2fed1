package tsp

import "github.com/krypt-n/vroom/matrix"

// ToSuccessors converts a tour from ordered-sequence form (seq[k] is the
// k-th visited vertex) to successor-array form (next[v] is the vertex
// visited immediately after v). Both forms describe the same Hamiltonian
// cycle; local search (component G) operates on the successor form, while
// construction (component F) and output formatting (component I) operate
// on the sequence form.
//
// Precondition: seq is a permutation of {0,...,len(seq)-1}.
//
// Complexity: O(n).
func ToSuccessors(seq []int) []int {
	n := len(seq)
	next := make([]int, n)
	for i, v := range seq {
		next[v] = seq[(i+1)%n]
	}
	return next
}

// ToSequence converts a tour from successor-array form back to
// ordered-sequence form, starting the walk at vertex start.
//
// Precondition: next is a single cycle covering every vertex exactly once.
//
// Complexity: O(n).
func ToSequence(next []int, start int) []int {
	n := len(next)
	seq := make([]int, 0, n)
	v := start
	for i := 0; i < n; i++ {
		seq = append(seq, v)
		v = next[v]
	}
	return seq
}

// Cost sums the edge weights of a tour given in successor-array form.
//
// Complexity: O(n) vertices, each a matrix lookup.
func Cost(next []int, dist *matrix.DistanceMatrix) int64 {
	var total int64
	for v, w := range next {
		total += dist.At(v, w)
	}
	return total
}

// SequenceCost sums the edge weights of a tour given in ordered-sequence
// form.
//
// Complexity: O(n).
func SequenceCost(seq []int, dist *matrix.DistanceMatrix) int64 {
	n := len(seq)
	var total int64
	for i := 0; i < n; i++ {
		total += dist.At(seq[i], seq[(i+1)%n])
	}
	return total
}
