package stats

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinCountTinySamples(t *testing.T) {
	assert.Equal(t, DefaultBins, BinCount(nil))
	assert.Equal(t, DefaultBins, BinCount([]float64{}))
	assert.Equal(t, DefaultBins, BinCount([]float64{50000}))
}

func TestBinCountConstantSampleFallsBackToSturges(t *testing.T) {
	sample := make([]float64, 50)
	for i := range sample {
		sample[i] = 100000
	}

	// IQR and range are both zero, so Sturges applies:
	// ceil(log2(50) + 1) = 7
	assert.Equal(t, 7, BinCount(sample))
}

func TestBinCountZeroIQRNonZeroRange(t *testing.T) {
	// Heavy repetition keeps the quartiles identical while min/max differ.
	sample := make([]float64, 100)
	for i := range sample {
		sample[i] = 75000
	}
	sample[0] = 40000
	sample[99] = 200000

	got := BinCount(sample)
	// Sturges for n=100: ceil(log2(100)+1) = 8
	assert.Equal(t, 8, got)
}

func TestBinCountUniformSample(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	sample := make([]float64, 1000)
	for i := range sample {
		sample[i] = 40000 + rng.Float64()*160000
	}

	got := BinCount(sample)
	assert.GreaterOrEqual(t, got, MinBins)
	assert.LessOrEqual(t, got, MaxBins)

	// Deterministic on the same input.
	assert.Equal(t, got, BinCount(sample))
}

func TestBinCountOrderIndependent(t *testing.T) {
	sample := []float64{52000, 48000, 61000, 45000, 70000, 55000, 49000, 66000, 58000, 51000}
	reversed := make([]float64, len(sample))
	for i, v := range sample {
		reversed[len(sample)-1-i] = v
	}
	assert.Equal(t, BinCount(sample), BinCount(reversed))
}

func TestBinCountRobustToOutliers(t *testing.T) {
	// A tight cluster plus two extreme outliers. A pure range-based rule
	// would explode the bin width; FD keys off the IQR instead, so the
	// result stays clamped rather than collapsing to the minimum.
	sample := make([]float64, 200)
	rng := rand.New(rand.NewSource(7))
	for i := range sample {
		sample[i] = 60000 + rng.Float64()*2000
	}
	sample[0] = 1000
	sample[1] = 2000000

	got := BinCount(sample)
	assert.GreaterOrEqual(t, got, MinBins)
	assert.LessOrEqual(t, got, MaxBins)
	// The huge raw range over a small FD width pushes the candidate far
	// above the cap, so the clamp must hold it at MaxBins.
	assert.Equal(t, MaxBins, got)
}

func TestBinCountAlwaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for n := 2; n <= 2048; n *= 2 {
		sample := make([]float64, n)
		for i := range sample {
			sample[i] = rng.NormFloat64()*30000 + 100000
		}
		got := BinCount(sample)
		assert.GreaterOrEqual(t, got, MinBins, "n=%d", n)
		assert.LessOrEqual(t, got, MaxBins, "n=%d", n)
	}
}
