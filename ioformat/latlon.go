package ioformat

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/krypt-n/vroom/matrix"
)

// latlonRecord matches a single `loc=<x>,<y>` record: both fields are
// decimals with an optional leading sign and an optional fractional part,
// with optional trailing whitespace.
//
// Field-order convention (spec §9 Open Question): the field before the
// comma is X, the field after is Y — there is no geographic lat/lon
// interpretation, distances are planar Euclidean.
var latlonRecord = regexp.MustCompile(`^loc=([+-]?[0-9]+(?:\.[0-9]+)?),([+-]?[0-9]+(?:\.[0-9]+)?)\s*$`)

// ParseLatLonQuery parses a `&`-separated sequence of `loc=<x>,<y>` records
// into Locations, in record order. Returns InvalidLocationSyntaxError for
// the first record that fails to match the grammar (1-based position), or
// ErrEmptyProblem if fewer than 2 records are present.
//
// Complexity: O(len(s)).
func ParseLatLonQuery(s string) ([]matrix.Location, error) {
	records := strings.Split(s, "&")
	locs := make([]matrix.Location, 0, len(records))
	for i, rec := range records {
		m := latlonRecord.FindStringSubmatch(rec)
		if m == nil {
			return nil, &InvalidLocationSyntaxError{Position: i + 1, Record: rec}
		}
		x, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return nil, &InvalidLocationSyntaxError{Position: i + 1, Record: rec}
		}
		y, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return nil, &InvalidLocationSyntaxError{Position: i + 1, Record: rec}
		}
		locs = append(locs, matrix.NewLocation(x, y, i))
	}
	if len(locs) < 2 {
		return nil, ErrEmptyProblem
	}
	return locs, nil
}
