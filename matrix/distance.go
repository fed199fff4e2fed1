package matrix

import (
	"math"

	lru "github.com/hashicorp/golang-lru/v2"
)

// MaxDistance bounds the largest distance this matrix will ever report for
// a real pair of locations. SelfDistance is derived from it at 3/4 of the
// bound, which is large enough that no real computed distance can collide
// with it (callers can use it to "forbid" self-loops without special-casing
// the diagonal), while leaving headroom so a sum of up to three such
// sentinel values stays well within int64 range.
const (
	MaxDistance  int64 = 1 << 40
	SelfDistance       = 3 * (MaxDistance / 4)
)

// rowCacheSize caps the number of memoized rows per DistanceMatrix. A row
// costs n int64s, so the cache holds at most min(n, 4096) * n * 8 bytes
// (about 8 MB at n = 1,000 and about 330 MB at n = 10,000), while still
// making repeated row(i) lookups (as local search performs heavily) cheap
// after the first pass.
const rowCacheSize = 4096

// DistanceMatrix is the lazy, sentinel-backed N×N view over a Location
// table described in the package doc. Rows are computed on demand from the
// Location table and memoized in a bounded LRU; no N² storage is required.
//
// A DistanceMatrix is safe to share for read access across goroutines: rows
// are immutable once computed, and the LRU cache package used here
// (hashicorp/golang-lru) is internally synchronized.
type DistanceMatrix struct {
	locs []Location
	rows *lru.Cache[int, []int64]
}

// New builds a DistanceMatrix over locs. locs must be non-empty; New does
// not enforce N≥2 — that precondition belongs to the callers that require a
// non-trivial problem (see tsp.Christofides).
//
// Complexity: O(1) — no rows are computed eagerly.
func New(locs []Location) (*DistanceMatrix, error) {
	if len(locs) == 0 {
		return nil, ErrEmptyLocationSet
	}
	cap := rowCacheSize
	if len(locs) < cap {
		cap = len(locs)
	}
	cache, err := lru.New[int, []int64](cap)
	if err != nil {
		return nil, err
	}
	return &DistanceMatrix{locs: append([]Location(nil), locs...), rows: cache}, nil
}

// Size returns N, the number of locations.
//
// Complexity: O(1).
func (m *DistanceMatrix) Size() int {
	return len(m.locs)
}

// Location returns the i-th location as loaded.
//
// Complexity: O(1).
func (m *DistanceMatrix) Location(i int) Location {
	return m.locs[i]
}

// Row returns the i-th row of the matrix: row[j] == distance(i, j), with
// row[i] == SelfDistance. The slice is owned by the matrix's cache and must
// not be mutated by callers.
//
// Complexity: O(1) amortized (cache hit); O(n) on a cache miss.
func (m *DistanceMatrix) Row(i int) []int64 {
	if cached, ok := m.rows.Get(i); ok {
		return cached
	}
	row := m.computeRow(i)
	m.rows.Add(i, row)
	return row
}

// At returns the distance between i and j. It is a convenience wrapper over
// Row; callers scanning an entire row should prefer Row directly to avoid
// repeated cache lookups.
//
// Complexity: same as Row.
func (m *DistanceMatrix) At(i, j int) int64 {
	return m.Row(i)[j]
}

func (m *DistanceMatrix) computeRow(i int) []int64 {
	n := len(m.locs)
	row := make([]int64, n)
	a := m.locs[i]
	for j := 0; j < n; j++ {
		if i == j {
			row[j] = SelfDistance
			continue
		}
		b := m.locs[j]
		row[j] = roundHalfUp(a, b)
	}
	return row
}

// roundHalfUp computes round(sqrt((x1-x2)^2 + (y1-y2)^2)), rounding halves
// up (away from zero — the two coincide for non-negative distances).
func roundHalfUp(a, b Location) int64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	d := math.Sqrt(dx*dx + dy*dy)
	return int64(math.Round(d))
}

// Submatrix returns a new DistanceMatrix restricted to the locations named
// by indices (into the parent matrix), in the given order: the result's
// [a][b] equals the parent's [indices[a]][indices[b]]. It shares no cache
// state with the parent.
//
// Complexity: O(k) where k = len(indices); rows are still computed lazily.
func (m *DistanceMatrix) Submatrix(indices []int) (*DistanceMatrix, error) {
	sub := make([]Location, len(indices))
	for a, idx := range indices {
		sub[a] = m.locs[idx]
	}
	return New(sub)
}
