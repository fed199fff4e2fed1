package tsp

import "errors"

// ErrEmptyProblem is raised when a problem has fewer than 2 locations —
// Christofides has no Hamiltonian cycle to build.
var ErrEmptyProblem = errors.New("tsp: empty problem (need at least 2 locations)")
