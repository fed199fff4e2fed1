// Package solver orchestrates the two-phase TSP solve (component H):
// build the distance matrix, run the Christofides construction heuristic
// to get a seed tour, then iterate the three local-search operators to a
// joint fixed point.
package solver

import (
	"time"

	"go.uber.org/zap"

	"github.com/krypt-n/vroom/localsearch"
	"github.com/krypt-n/vroom/matrix"
	"github.com/krypt-n/vroom/tsp"
)

// Result is the outcome of a complete solve: the final tour, its cost, and
// the timing/diagnostic data the CLI and output serializer surface.
type Result struct {
	Tour    []int // ordered sequence form, starting at vertex 0
	Cost    int64
	Seed    []int
	SeedCost int64
	Threads int

	MatrixBuildTime time.Duration
	HeuristicTime   time.Duration
	LocalSearchTime time.Duration
}

// Solve builds the distance matrix over locs and runs construction plus
// local search to a fixed point, using up to threads workers per
// local-search step. Returns matrix.ErrEmptyLocationSet if locs is empty,
// or tsp.ErrEmptyProblem if locs has fewer than 2 entries.
//
// logger receives: an info-level line with the seed (pre-local-search)
// cost, and a debug-level line with gain statistics after every
// perform_all_*_steps call that applied at least one move (passes with no
// improving move are not logged) — purely observational, matching the source
// system's own pre-local-search cost log.
func Solve(locs []matrix.Location, threads int, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	t0 := time.Now()
	dist, err := matrix.New(locs)
	if err != nil {
		return nil, err
	}
	matrixBuildTime := time.Since(t0)

	t1 := time.Now()
	seed, err := tsp.Christofides(dist)
	if err != nil {
		return nil, err
	}
	heuristicTime := time.Since(t1)

	seedCost := tsp.SequenceCost(seed, dist)
	logger.Info("seed tour constructed", zap.Int64("seed_cost", seedCost), zap.Int("n", dist.Size()))

	t2 := time.Now()
	engine := localsearch.NewEngine(dist, seed, threads)
	for {
		g2, gains2 := engine.PerformAllTwoOptSteps()
		logGains(logger, "2-opt", gains2)

		gr, gainsR := engine.PerformAllRelocateSteps()
		logGains(logger, "relocate", gainsR)

		go_, gainsO := engine.PerformAllOrOptSteps()
		logGains(logger, "or-opt", gainsO)

		if g2 == 0 && gr == 0 && go_ == 0 {
			break
		}
	}
	localSearchTime := time.Since(t2)

	return &Result{
		Tour:            engine.Tour(),
		Cost:            engine.Cost(),
		Seed:            seed,
		SeedCost:        seedCost,
		Threads:         engine.Threads(),
		MatrixBuildTime: matrixBuildTime,
		HeuristicTime:   heuristicTime,
		LocalSearchTime: localSearchTime,
	}, nil
}

func logGains(logger *zap.Logger, operator string, gains []int64) {
	if len(gains) == 0 {
		return
	}
	s := localsearch.SummarizeGains(gains)
	logger.Debug("operator pass complete",
		zap.String("operator", operator),
		zap.Int("steps", s.Count),
		zap.Int64("total_gain", s.Total),
		zap.Float64("mean_gain", s.Mean),
		zap.Float64("median_gain", s.Median),
		zap.Float64("stddev_gain", s.StdDev),
	)
}
