package ioformat

import (
	"fmt"
	"strings"

	"github.com/krypt-n/vroom/matrix"
)

// Load dispatches to ParseTSPLIB or ParseLatLonQuery according to format,
// which must be one of "tsplib", "latlon", or "auto" ("" is treated as
// "auto"). Under "auto", input is parsed as TSPLIB if a `DIMENSION` token
// appears anywhere in it, and as a lat/lon query otherwise.
func Load(input, format string) ([]matrix.Location, error) {
	switch format {
	case "tsplib":
		return ParseTSPLIB(input)
	case "latlon":
		return ParseLatLonQuery(input)
	case "", "auto":
		if strings.Contains(input, "DIMENSION") {
			return ParseTSPLIB(input)
		}
		return ParseLatLonQuery(input)
	default:
		return nil, fmt.Errorf("ioformat: unknown format %q", format)
	}
}
