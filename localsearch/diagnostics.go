package localsearch

import "github.com/montanaflynn/stats"

// GainStats summarizes a sequence of per-step gains returned alongside a
// perform_all_*_steps call, purely for operator-tuning visibility — it
// never feeds back into move selection or any tie-break.
type GainStats struct {
	Count  int
	Total  int64
	Mean   float64
	Median float64
	StdDev float64
}

// SummarizeGains computes descriptive statistics over a per-step gain
// sequence. Returns the zero GainStats (Count: 0) if gains is empty.
func SummarizeGains(gains []int64) GainStats {
	if len(gains) == 0 {
		return GainStats{}
	}

	data := make(stats.Float64Data, len(gains))
	var total int64
	for i, g := range gains {
		data[i] = float64(g)
		total += g
	}

	mean, _ := stats.Mean(data)
	median, _ := stats.Median(data)
	stddev, _ := stats.StandardDeviation(data)

	return GainStats{
		Count:  len(gains),
		Total:  total,
		Mean:   mean,
		Median: median,
		StdDev: stddev,
	}
}
