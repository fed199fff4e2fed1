package ioformat

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/krypt-n/vroom/matrix"
)

// Timing carries the three phase durations (matrix build, construction
// heuristic, local search), each in milliseconds.
type Timing struct {
	MatrixBuildMS float64 `json:"matrix_build_ms"`
	HeuristicMS   float64 `json:"heuristic_ms"`
	LocalSearchMS float64 `json:"local_search_ms"`
}

// Output is the structured result document: solution cost, the visited
// sequence projected per view, a timing breakdown, and run metadata.
type Output struct {
	RunID   string `json:"run_id"`
	Cost    int64  `json:"cost"`
	Threads int    `json:"threads"`
	View    string `json:"view"`

	// Route holds [x, y] pairs in visit order; populated when View == "route".
	Route [][2]float64 `json:"route,omitempty"`
	// Tour holds input indices in visit order; populated when View == "tour".
	Tour []int `json:"tour,omitempty"`

	Timing Timing `json:"timing"`
}

// BuildOutput projects tour (a permutation of indices into locs, ordered-
// sequence form) into an Output document according to view ("route" or
// "tour"; any other value is an error).
func BuildOutput(tour []int, locs []matrix.Location, cost int64, threads int, runID, view string, timing Timing) (*Output, error) {
	out := &Output{
		RunID:   runID,
		Cost:    cost,
		Threads: threads,
		View:    view,
		Timing:  timing,
	}
	switch view {
	case "route":
		out.Route = make([][2]float64, len(tour))
		for i, v := range tour {
			out.Route[i] = [2]float64{locs[v].X, locs[v].Y}
		}
	case "tour":
		out.Tour = make([]int, len(tour))
		for i, v := range tour {
			out.Tour[i] = locs[v].InputIndex
		}
	default:
		return nil, fmt.Errorf("ioformat: unknown view %q", view)
	}
	return out, nil
}

// Write encodes o as indented JSON to w.
func (o *Output) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(o)
}
