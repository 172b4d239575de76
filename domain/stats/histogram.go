package stats

// HistogramBin is one equal-width interval of a histogram. Lower is
// inclusive; Upper is exclusive except for the last bin, which also
// absorbs the sample maximum.
type HistogramBin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// HistogramResult is a computed histogram over a numeric sample.
type HistogramResult struct {
	Bins       []HistogramBin `json:"bins"`
	BinCount   int            `json:"bin_count"`
	SampleSize int            `json:"sample_size"`
	Min        float64        `json:"min"`
	Max        float64        `json:"max"`
}

// Histogram partitions the sample's value range into BinCount(sample)
// equal-width bins and counts occupancy. A zero-spread sample collapses
// into a single bin holding everything; an empty sample yields no bins.
func Histogram(sample []float64) HistogramResult {
	result := HistogramResult{SampleSize: len(sample)}
	if len(sample) == 0 {
		return result
	}

	lo, hi := sample[0], sample[0]
	for _, v := range sample[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	result.Min = lo
	result.Max = hi
	result.BinCount = BinCount(sample)

	if hi == lo {
		result.Bins = []HistogramBin{{Lower: lo, Upper: hi, Count: len(sample)}}
		return result
	}

	width := (hi - lo) / float64(result.BinCount)
	bins := make([]HistogramBin, result.BinCount)
	for i := range bins {
		bins[i].Lower = lo + float64(i)*width
		bins[i].Upper = lo + float64(i+1)*width
	}
	bins[len(bins)-1].Upper = hi

	for _, v := range sample {
		idx := int((v - lo) / width)
		if idx >= len(bins) {
			idx = len(bins) - 1
		}
		bins[idx].Count++
	}
	result.Bins = bins
	return result
}
