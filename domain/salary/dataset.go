package salary

import (
	"sort"
	"strconv"
)

// Dataset is an immutable collection of salary records. Filtering returns a
// new Dataset sharing the underlying records; the base slice is never
// mutated after construction.
type Dataset struct {
	records []Record
}

// NewDataset wraps a record slice. The caller must not modify the slice
// afterwards.
func NewDataset(records []Record) *Dataset {
	return &Dataset{records: records}
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.records)
}

// Records exposes the underlying records for read-only iteration.
func (d *Dataset) Records() []Record {
	return d.records
}

// Salaries returns the salary column as a fresh float slice, suitable for
// handing to the stats package.
func (d *Dataset) Salaries() []float64 {
	out := make([]float64, len(d.records))
	for i, r := range d.records {
		out[i] = r.SalaryUSD
	}
	return out
}

// dimensionValue returns the record's value for a filter dimension as a
// string, matching the representation used in filter selections.
func dimensionValue(r Record, dim Dimension) string {
	switch dim {
	case DimYear:
		return strconv.Itoa(r.Year)
	case DimSeniority:
		return r.Seniority
	case DimContract:
		return r.Contract
	case DimCompanySize:
		return r.CompanySize
	}
	return ""
}

// DistinctValues returns the sorted distinct values of a filter dimension,
// used to populate filter widgets. Years sort numerically.
func (d *Dataset) DistinctValues(dim Dimension) []string {
	seen := make(map[string]bool)
	values := make([]string, 0)
	for _, r := range d.records {
		v := dimensionValue(r, dim)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	if dim == DimYear {
		sort.Slice(values, func(i, j int) bool {
			a, _ := strconv.Atoi(values[i])
			b, _ := strconv.Atoi(values[j])
			return a < b
		})
	} else {
		sort.Strings(values)
	}
	return values
}
