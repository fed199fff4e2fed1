package localsearch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/krypt-n/vroom/localsearch"
	"github.com/krypt-n/vroom/matrix"
	"github.com/krypt-n/vroom/tsp"
)

func requireValidPermutation(t *testing.T, next []int) {
	n := len(next)
	seen := make([]bool, n)
	v := 0
	for i := 0; i < n; i++ {
		require.False(t, seen[v], "vertex %d visited twice", v)
		seen[v] = true
		require.NotEqual(t, v, next[v], "self-loop at %d", v)
		v = next[v]
	}
	require.Equal(t, 0, v, "cycle did not return to start after N steps")
}

func TestTwoOptStepFixesCrossedSquare(t *testing.T) {
	dist := square(t)
	e := localsearch.NewEngine(dist, []int{0, 2, 1, 3}, 1)
	require.Equal(t, int64(48), e.Cost())

	gain := e.TwoOptStep()
	require.Equal(t, int64(8), gain)
	require.Equal(t, int64(40), e.Cost())
	require.Equal(t, []int{0, 1, 2, 3}, e.Tour())
	requireValidPermutation(t, e.Next())

	require.Equal(t, int64(0), e.TwoOptStep())
}

func collinearFour(t *testing.T) *matrix.DistanceMatrix {
	locs := []matrix.Location{
		matrix.NewLocation(0, 0, 0),
		matrix.NewLocation(10, 0, 1),
		matrix.NewLocation(5, 0, 2),
		matrix.NewLocation(15, 0, 3),
	}
	m, err := matrix.New(locs)
	require.NoError(t, err)
	return m
}

func TestRelocateStepSortsCollinearPoints(t *testing.T) {
	dist := collinearFour(t)
	e := localsearch.NewEngine(dist, []int{0, 1, 2, 3}, 1)
	require.Equal(t, int64(40), e.Cost())

	gain := e.RelocateStep()
	require.Equal(t, int64(10), gain)
	require.Equal(t, int64(30), e.Cost())
	require.Equal(t, []int{0, 2, 1, 3}, e.Tour())
	requireValidPermutation(t, e.Next())

	require.Equal(t, int64(0), e.RelocateStep())
}

func TestOperatorsBelowMeaningfulSizeReturnZero(t *testing.T) {
	locs := []matrix.Location{
		matrix.NewLocation(0, 0, 0),
		matrix.NewLocation(1, 0, 1),
		matrix.NewLocation(0, 1, 2),
	}
	m, err := matrix.New(locs)
	require.NoError(t, err)

	e := localsearch.NewEngine(m, []int{0, 1, 2}, 1)
	require.Equal(t, int64(0), e.TwoOptStep())
	require.Equal(t, int64(0), e.OrOptStep())
}

func hexagon(t *testing.T) *matrix.DistanceMatrix {
	locs := []matrix.Location{
		matrix.NewLocation(0, 0, 0),
		matrix.NewLocation(4, 0, 1),
		matrix.NewLocation(6, 3, 2),
		matrix.NewLocation(4, 6, 3),
		matrix.NewLocation(0, 6, 4),
		matrix.NewLocation(-2, 3, 5),
	}
	m, err := matrix.New(locs)
	require.NoError(t, err)
	return m
}

func TestPerformAllStepsAreIdempotent(t *testing.T) {
	dist := hexagon(t)
	seed, err := tsp.Christofides(dist)
	require.NoError(t, err)

	e := localsearch.NewEngine(dist, seed, 2)
	runToFixedPoint(e)

	for _, step := range []func() int64{e.TwoOptStep, e.RelocateStep, e.OrOptStep} {
		require.Equal(t, int64(0), step())
	}
}

func TestOperatorsNeverIncreaseCost(t *testing.T) {
	dist := hexagon(t)
	seed, err := tsp.Christofides(dist)
	require.NoError(t, err)

	e := localsearch.NewEngine(dist, seed, 3)
	before := e.Cost()
	for i := 0; i < 50; i++ {
		g2 := e.TwoOptStep()
		gr := e.RelocateStep()
		go_ := e.OrOptStep()
		after := e.Cost()
		require.LessOrEqual(t, after, before)
		require.Equal(t, before-after, g2+gr+go_)
		requireValidPermutation(t, e.Next())
		before = after
		if g2 == 0 && gr == 0 && go_ == 0 {
			break
		}
	}
}

func TestLocalSearchIsIndependentOfThreadCount(t *testing.T) {
	dist := hexagon(t)
	seed, err := tsp.Christofides(dist)
	require.NoError(t, err)

	var wantTour []int
	var wantCost int64
	for i, threads := range []int{1, 2, 3, 6} {
		e := localsearch.NewEngine(dist, seed, threads)
		runToFixedPoint(e)
		if i == 0 {
			wantTour = e.Tour()
			wantCost = e.Cost()
			continue
		}
		require.Equal(t, wantCost, e.Cost())
		require.Equal(t, wantTour, e.Tour())
	}
}

func runToFixedPoint(e *localsearch.Engine) {
	for {
		g2, _ := e.PerformAllTwoOptSteps()
		gr, _ := e.PerformAllRelocateSteps()
		go_, _ := e.PerformAllOrOptSteps()
		if g2 == 0 && gr == 0 && go_ == 0 {
			return
		}
	}
}
