package simulation

import (
	"math"
	"sort"

	"github.com/mcoot/wordlestrat/internal/model"
)

// Summarize computes descriptive statistics for a series of trial averages.
// StdDev is the sample standard deviation and is 0 for fewer than two values.
func Summarize(values []float64) model.SeriesStats {
	stats := model.SeriesStats{Count: len(values)}
	if len(values) == 0 {
		return stats
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	stats.Mean = sum / float64(len(sorted))
	stats.Min = sorted[0]
	stats.Max = sorted[len(sorted)-1]

	n := len(sorted)
	if n%2 == 0 {
		stats.Median = (sorted[n/2-1] + sorted[n/2]) / 2
	} else {
		stats.Median = sorted[n/2]
	}

	if n >= 2 {
		ss := 0.0
		for _, v := range sorted {
			d := v - stats.Mean
			ss += d * d
		}
		stats.StdDev = math.Sqrt(ss / float64(n-1))
	}

	return stats
}
