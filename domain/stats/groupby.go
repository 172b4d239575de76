package stats

import "sort"

// KeyedMean is an aggregated group: a categorical key with the mean of its
// values and the group size.
type KeyedMean struct {
	Key   string  `json:"key"`
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
}

// KeyedCount is a categorical key with its occurrence count.
type KeyedCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// MeanByKey groups values by key and computes per-group means. Output is
// sorted by key for determinism.
func MeanByKey(keys []string, values []float64) []KeyedMean {
	if len(keys) != len(values) || len(keys) == 0 {
		return nil
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for i, k := range keys {
		sums[k] += values[i]
		counts[k]++
	}

	out := make([]KeyedMean, 0, len(sums))
	for k, sum := range sums {
		out = append(out, KeyedMean{Key: k, Mean: sum / float64(counts[k]), Count: counts[k]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// TopNByMean returns the n groups with the highest means, descending.
// Ties break by key so repeated calls on the same data agree.
func TopNByMean(keys []string, values []float64, n int) []KeyedMean {
	groups := MeanByKey(keys, values)
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Mean != groups[j].Mean {
			return groups[i].Mean > groups[j].Mean
		}
		return groups[i].Key < groups[j].Key
	})
	if n > 0 && len(groups) > n {
		groups = groups[:n]
	}
	return groups
}

// ValueCounts tallies occurrences of each key, sorted by count descending
// with key ties broken alphabetically.
func ValueCounts(keys []string) []KeyedCount {
	counts := make(map[string]int)
	for _, k := range keys {
		counts[k]++
	}
	out := make([]KeyedCount, 0, len(counts))
	for k, c := range counts {
		out = append(out, KeyedCount{Key: k, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// Mode returns the most frequent key, with alphabetical tie-breaking, or
// the empty string for empty input.
func Mode(keys []string) string {
	counts := ValueCounts(keys)
	if len(counts) == 0 {
		return ""
	}
	return counts[0].Key
}
