package ioformat

import (
	"errors"
	"fmt"
)

// ErrEmptyProblem is raised when a load produced fewer than 2 locations.
var ErrEmptyProblem = errors.New("ioformat: fewer than 2 locations")

// InvalidLocationSyntaxError reports a lat/lon record that does not match
// the `loc=<x>,<y>` grammar. Position is the record's 1-based position in
// the `&`-separated input.
type InvalidLocationSyntaxError struct {
	Position int
	Record   string
}

func (e *InvalidLocationSyntaxError) Error() string {
	return fmt.Sprintf("ioformat: invalid location syntax at record %d: %q", e.Position, e.Record)
}

// InvalidTsplibHeaderError reports a missing or unparsable `DIMENSION`
// line, a missing `NODE_COORD_SECTION`, or a malformed node record
// (too few fields, non-integer index, non-numeric coordinate).
type InvalidTsplibHeaderError struct {
	Reason string
}

func (e *InvalidTsplibHeaderError) Error() string {
	return "ioformat: invalid tsplib header: " + e.Reason
}
