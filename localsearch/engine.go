package localsearch

import "github.com/krypt-n/vroom/matrix"

// Engine owns a successor-array tour exclusively and applies the three
// neighborhood operators to it in place. A fresh Engine must be built from
// an initial tour (typically the Christofides seed); it is not safe for
// concurrent use by more than one caller — the caller serializes calls to
// the *_step and perform_all_*_steps methods, which internally fan out to
// Threads workers for the scan phase only.
type Engine struct {
	dist    *matrix.DistanceMatrix
	next    []int
	size    int
	threads int

	uniform    []Range
	triangular []Range
}

// NewEngine builds a local-search engine over dist, seeded with tour (an
// ordered-sequence Hamiltonian cycle over dist's N locations), using up to
// threads worker goroutines per scan. threads is clamped to [1, N].
//
// Precondition: tour is a permutation of {0,...,dist.Size()-1}.
//
// Complexity: O(N + T) for the partition tables; O(1) otherwise.
func NewEngine(dist *matrix.DistanceMatrix, tour []int, threads int) *Engine {
	n := dist.Size()
	t := threads
	if t < 1 {
		t = 1
	}
	if t > n {
		t = n
	}

	next := make([]int, n)
	for i, v := range tour {
		next[v] = tour[(i+1)%n]
	}

	return &Engine{
		dist:       dist,
		next:       next,
		size:       n,
		threads:    t,
		uniform:    UniformPartition(n, t),
		triangular: TriangularPartition(n, t),
	}
}

// Threads returns the effective (post-clamp) worker count.
func (e *Engine) Threads() int { return e.threads }

// Size returns N, the vertex count.
func (e *Engine) Size() int { return e.size }

// Tour returns the current tour in ordered-sequence form, starting at
// vertex 0.
//
// Complexity: O(N).
func (e *Engine) Tour() []int {
	seq := make([]int, e.size)
	v := 0
	for i := 0; i < e.size; i++ {
		seq[i] = v
		v = e.next[v]
	}
	return seq
}

// Next returns a copy of the current successor array.
//
// Complexity: O(N).
func (e *Engine) Next() []int {
	return append([]int(nil), e.next...)
}

// Cost returns sum(M[v][next[v]]) over all v — the current tour length.
//
// Complexity: O(N).
func (e *Engine) Cost() int64 {
	var total int64
	for v, w := range e.next {
		total += e.dist.At(v, w)
	}
	return total
}
