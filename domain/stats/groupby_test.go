package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeanByKey(t *testing.T) {
	keys := []string{"a", "b", "a", "b", "c"}
	values := []float64{10, 20, 30, 40, 50}

	groups := MeanByKey(keys, values)
	assert.Equal(t, []KeyedMean{
		{Key: "a", Mean: 20, Count: 2},
		{Key: "b", Mean: 30, Count: 2},
		{Key: "c", Mean: 50, Count: 1},
	}, groups)
}

func TestMeanByKeyMismatchedInput(t *testing.T) {
	assert.Nil(t, MeanByKey([]string{"a"}, []float64{1, 2}))
	assert.Nil(t, MeanByKey(nil, nil))
}

func TestTopNByMeanOrdersAndLimits(t *testing.T) {
	keys := []string{"analyst", "engineer", "scientist", "manager"}
	values := []float64{50000, 90000, 120000, 90000}

	top := TopNByMean(keys, values, 3)
	assert.Len(t, top, 3)
	assert.Equal(t, "scientist", top[0].Key)
	// Equal means break ties alphabetically.
	assert.Equal(t, "engineer", top[1].Key)
	assert.Equal(t, "manager", top[2].Key)
}

func TestValueCounts(t *testing.T) {
	counts := ValueCounts([]string{"remote", "onsite", "remote", "hybrid", "remote", "onsite"})
	assert.Equal(t, []KeyedCount{
		{Key: "remote", Count: 3},
		{Key: "onsite", Count: 2},
		{Key: "hybrid", Count: 1},
	}, counts)
}

func TestMode(t *testing.T) {
	assert.Equal(t, "x", Mode([]string{"x", "y", "x"}))
	assert.Equal(t, "", Mode(nil))
	// Tie breaks alphabetically for determinism.
	assert.Equal(t, "a", Mode([]string{"b", "a"}))
}
