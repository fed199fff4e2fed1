// Package matrix provides the lazy Euclidean distance view (component A)
// that every other package in this module builds on: a Location table plus
// a row-oriented, sentinel-backed distance matrix computed on demand from it.
//
// Design:
//   - Locations are immutable once loaded; the matrix never mutates them.
//   - Rows are computed on demand and memoized in a bounded LRU, never
//     materialized as a dense N×N table — see DistanceMatrix.Row.
//   - No logging, no panics on valid input; only sentinel errors from
//     errors.go.
package matrix

// Location is an immutable planar point plus its stable input index.
type Location struct {
	X, Y float64 // planar coordinate, arbitrary real-valued units
	// InputIndex is the location's stable identity in its source format —
	// the record's scan position for the lat/lon loader, or the literal
	// `<index>` field for the TSPLIB loader. It survives any later
	// reordering of a Tour and is what the "tour" output view (component
	// I) reports.
	InputIndex int
}

// NewLocation constructs a Location at (x, y) carrying inputIndex.
//
// Complexity: O(1).
func NewLocation(x, y float64, inputIndex int) Location {
	return Location{X: x, Y: y, InputIndex: inputIndex}
}
