package stats

import (
	"math"

	"github.com/montanaflynn/stats"
)

// Histogram bin-count bounds. These are presentation defaults tuned for
// salary-scale data, not statistical constants; adjust them if the
// dashboard ever renders a dataset on a very different scale.
const (
	MinBins     = 5
	MaxBins     = 100
	DefaultBins = 10
)

// BinCount estimates a histogram bin count for a numeric sample using the
// Freedman-Diaconis rule, falling back to Sturges' rule when the sample has
// zero IQR or zero range. The result is always within [MinBins, MaxBins],
// except for samples too small to estimate spread (fewer than two values),
// which get DefaultBins.
//
// The input must already be stripped of missing values. The function is
// pure and order-independent; callers may invoke it concurrently.
func BinCount(sample []float64) int {
	n := len(sample)
	if n < 2 {
		return DefaultBins
	}

	q1, err := stats.Percentile(sample, 25)
	if err != nil {
		return sturges(n)
	}
	q3, err := stats.Percentile(sample, 75)
	if err != nil {
		return sturges(n)
	}
	lo, _ := stats.Min(sample)
	hi, _ := stats.Max(sample)

	iqr := q3 - q1
	spread := hi - lo
	if iqr > 0 && spread > 0 {
		// Freedman-Diaconis: h = 2 * IQR * n^(-1/3)
		h := 2 * iqr * math.Pow(float64(n), -1.0/3.0)
		if h > 0 {
			if k := int(math.Round(spread / h)); k >= MinBins {
				return clampBins(k)
			}
		}
	}

	return sturges(n)
}

// sturges is the fallback rule: ceil(log2(n) + 1), clamped.
func sturges(n int) int {
	k := int(math.Ceil(math.Log2(math.Max(float64(n), 2)) + 1))
	return clampBins(k)
}

func clampBins(k int) int {
	if k < MinBins {
		return MinBins
	}
	if k > MaxBins {
		return MaxBins
	}
	return k
}
