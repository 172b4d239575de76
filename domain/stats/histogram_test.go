package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistogramEmptySample(t *testing.T) {
	result := Histogram(nil)
	assert.Empty(t, result.Bins)
	assert.Equal(t, 0, result.SampleSize)
}

func TestHistogramConstantSampleSingleBin(t *testing.T) {
	result := Histogram([]float64{100000, 100000, 100000})
	assert.Len(t, result.Bins, 1)
	assert.Equal(t, 3, result.Bins[0].Count)
	assert.Equal(t, 100000.0, result.Bins[0].Lower)
	assert.Equal(t, 100000.0, result.Bins[0].Upper)
}

func TestHistogramCoversRangeAndCountsAll(t *testing.T) {
	sample := []float64{40000, 55000, 60000, 62000, 71000, 80000, 95000, 120000, 150000, 200000}
	result := Histogram(sample)

	assert.Len(t, result.Bins, result.BinCount)
	assert.Equal(t, BinCount(sample), result.BinCount)
	assert.Equal(t, 40000.0, result.Bins[0].Lower)
	assert.Equal(t, 200000.0, result.Bins[len(result.Bins)-1].Upper)

	total := 0
	for i, bin := range result.Bins {
		total += bin.Count
		if i > 0 {
			assert.Equal(t, result.Bins[i-1].Upper, bin.Lower)
		}
	}
	assert.Equal(t, len(sample), total)
}

func TestHistogramMaxValueLandsInLastBin(t *testing.T) {
	sample := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	result := Histogram(sample)
	last := result.Bins[len(result.Bins)-1]
	assert.GreaterOrEqual(t, last.Count, 1)
}
