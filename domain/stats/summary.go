package stats

import (
	"github.com/montanaflynn/stats"
	gstat "gonum.org/v1/gonum/stat"
)

// SummaryStats holds descriptive statistics for a numeric sample.
type SummaryStats struct {
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	StdDev   float64 `json:"std_dev"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Q25      float64 `json:"q25"`
	Q75      float64 `json:"q75"`
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`
}

// Summarize computes descriptive statistics for a sample. An empty sample
// returns a zero-valued summary rather than an error; the dashboard shows
// a placeholder in that case.
func Summarize(sample []float64) SummaryStats {
	s := SummaryStats{Count: len(sample)}
	if len(sample) == 0 {
		return s
	}

	s.Mean, _ = stats.Mean(sample)
	s.Median, _ = stats.Median(sample)
	s.Min, _ = stats.Min(sample)
	s.Max, _ = stats.Max(sample)
	s.Q25, _ = stats.Percentile(sample, 25)
	s.Q75, _ = stats.Percentile(sample, 75)

	if len(sample) >= 2 {
		s.StdDev, _ = stats.StandardDeviationSample(sample)
	}
	if len(sample) >= 3 && s.StdDev > 0 {
		s.Skewness = gstat.Skew(sample, nil)
		s.Kurtosis = gstat.ExKurtosis(sample, nil)
	}
	return s
}
