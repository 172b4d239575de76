package salary

import "strings"

// Filter restricts a dataset by categorical dimension values. Dimensions
// combine with AND; values within one dimension combine with OR. A
// dimension with no selected values places no restriction, mirroring a
// multiselect widget with everything checked.
type Filter struct {
	Dimensions map[Dimension][]string
}

// NewFilter returns an empty filter.
func NewFilter() Filter {
	return Filter{Dimensions: make(map[Dimension][]string)}
}

// With adds allowed values for a dimension and returns the filter for
// chaining. Empty value lists are ignored.
func (f Filter) With(dim Dimension, values ...string) Filter {
	if f.Dimensions == nil {
		f.Dimensions = make(map[Dimension][]string)
	}
	if len(values) > 0 {
		f.Dimensions[dim] = append(f.Dimensions[dim], values...)
	}
	return f
}

// IsEmpty reports whether the filter places no restriction at all.
func (f Filter) IsEmpty() bool {
	for _, values := range f.Dimensions {
		if len(values) > 0 {
			return false
		}
	}
	return true
}

// Filter returns the subset of records matching all dimension constraints.
// Matching is case-insensitive on the categorical labels. The receiver is
// not modified.
func (d *Dataset) Filter(f Filter) *Dataset {
	if f.IsEmpty() {
		return d
	}

	sets := make(map[Dimension]map[string]bool, len(f.Dimensions))
	for dim, allowed := range f.Dimensions {
		if len(allowed) == 0 {
			continue
		}
		set := make(map[string]bool, len(allowed))
		for _, v := range allowed {
			set[strings.ToLower(v)] = true
		}
		sets[dim] = set
	}
	if len(sets) == 0 {
		return d
	}

	matched := make([]Record, 0, len(d.records))
	for _, r := range d.records {
		pass := true
		for dim, set := range sets {
			if !set[strings.ToLower(dimensionValue(r, dim))] {
				pass = false
				break
			}
		}
		if pass {
			matched = append(matched, r)
		}
	}
	return NewDataset(matched)
}
