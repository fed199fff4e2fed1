package matrix

import "errors"

// ErrEmptyLocationSet is returned when a matrix is built over zero locations.
var ErrEmptyLocationSet = errors.New("matrix: empty location set")
