package ioformat

import (
	"strconv"
	"strings"

	"github.com/krypt-n/vroom/matrix"
)

// ParseTSPLIB parses free-form TSPLIB-style text: a `DIMENSION : N` line
// and a `NODE_COORD_SECTION` line, in either order, followed (after the
// latter) by N whitespace-separated `<index> <x> <y>` records, optionally
// terminated by an `EOF` line. The literal `<index>` field of each record
// is the location's input index — the same field the original TSPLIB
// loader this format is modeled on carries through to its own output
// verbatim — not the record's scan position.
//
// Returns InvalidTsplibHeaderError if DIMENSION is missing or malformed,
// if NODE_COORD_SECTION is missing, or if a node record has fewer than
// three fields, a non-integer index field or a non-numeric coordinate;
// returns ErrEmptyProblem if fewer than 2 records result.
//
// Complexity: O(len(s)).
func ParseTSPLIB(s string) ([]matrix.Location, error) {
	lines := strings.Split(s, "\n")

	dimension := -1
	sectionStart := -1
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if dimension == -1 && strings.HasPrefix(trimmed, "DIMENSION") {
			parts := strings.SplitN(trimmed, ":", 2)
			if len(parts) != 2 {
				return nil, &InvalidTsplibHeaderError{Reason: "malformed DIMENSION line"}
			}
			n, err := strconv.Atoi(strings.TrimSpace(parts[1]))
			if err != nil {
				return nil, &InvalidTsplibHeaderError{Reason: "DIMENSION value is not an integer"}
			}
			dimension = n
		}
		if sectionStart == -1 && strings.HasPrefix(trimmed, "NODE_COORD_SECTION") {
			sectionStart = i + 1
		}
	}
	if dimension < 0 {
		return nil, &InvalidTsplibHeaderError{Reason: "DIMENSION missing or unparsable"}
	}
	if sectionStart < 0 {
		return nil, &InvalidTsplibHeaderError{Reason: "NODE_COORD_SECTION missing"}
	}

	locs := make([]matrix.Location, 0, dimension)
	for i := sectionStart; i < len(lines) && len(locs) < dimension; i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || trimmed == "EOF" {
			continue
		}
		fields := strings.Fields(trimmed)
		if len(fields) < 3 {
			return nil, &InvalidTsplibHeaderError{Reason: "malformed node record: " + trimmed}
		}
		index, errIdx := strconv.Atoi(fields[0])
		if errIdx != nil {
			return nil, &InvalidTsplibHeaderError{Reason: "non-integer index field: " + trimmed}
		}
		x, errX := strconv.ParseFloat(fields[1], 64)
		y, errY := strconv.ParseFloat(fields[2], 64)
		if errX != nil || errY != nil {
			return nil, &InvalidTsplibHeaderError{Reason: "non-numeric coordinate: " + trimmed}
		}
		locs = append(locs, matrix.NewLocation(x, y, index))
	}
	if len(locs) < 2 {
		return nil, ErrEmptyProblem
	}
	return locs, nil
}
