package graph

import "errors"

// ErrEdgeNotFound is returned when RemoveEdge is asked to remove an edge
// that is not present between the given endpoints.
var ErrEdgeNotFound = errors.New("graph: edge not found")
