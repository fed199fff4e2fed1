package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/krypt-n/vroom/tsp"
)

func TestGreedyMatchingEmpty(t *testing.T) {
	require.Nil(t, tsp.GreedyMatching(nil, func(i, j int) int64 { return 0 }))
}

func TestGreedyMatchingPairsEveryVertexExactlyOnce(t *testing.T) {
	odd := []int{0, 1, 2, 3}
	dist := func(i, j int) int64 { return int64((i - j) * (i - j)) }
	pairs := tsp.GreedyMatching(odd, dist)
	require.Len(t, pairs, 2)

	seen := map[int]bool{}
	for _, p := range pairs {
		require.False(t, seen[p[0]])
		require.False(t, seen[p[1]])
		seen[p[0]] = true
		seen[p[1]] = true
	}
	require.Len(t, seen, 4)
}

func TestGreedyMatchingPrefersCheapestFirst(t *testing.T) {
	// 0-1 is the cheapest edge among all pairs; it must be accepted.
	odd := []int{0, 1, 2, 3}
	weights := map[[2]int]int64{
		{0, 1}: 1,
		{0, 2}: 10, {0, 3}: 10,
		{1, 2}: 10, {1, 3}: 10,
		{2, 3}: 2,
	}
	dist := func(i, j int) int64 {
		lo, hi := i, j
		if lo > hi {
			lo, hi = hi, lo
		}
		return weights[[2]int{lo, hi}]
	}
	pairs := tsp.GreedyMatching(odd, dist)
	require.Contains(t, pairs, [2]int{0, 1})
	require.Contains(t, pairs, [2]int{2, 3})
}
