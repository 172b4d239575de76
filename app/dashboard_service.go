package app

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"salarydash/domain/salary"
	"salarydash/domain/stats"
)

// choroplethRole is the role broken out by country, matching the source
// dashboard's country panel.
const choroplethRole = "Data Scientist"

// Metrics are the headline KPI values shown above the charts.
type Metrics struct {
	MeanSalary   float64 `json:"mean_salary"`
	MaxSalary    float64 `json:"max_salary"`
	RecordCount  int     `json:"record_count"`
	FrequentRole string  `json:"frequent_role"`
}

// DashboardData is the full payload for one dashboard render: KPIs, chart
// configs, and descriptive statistics, all derived from one filtered
// subset.
type DashboardData struct {
	Metrics     Metrics            `json:"metrics"`
	Summary     stats.SummaryStats `json:"summary"`
	TopRoles    *ChartConfig       `json:"top_roles"`
	Histogram   *ChartConfig       `json:"histogram"`
	RemoteShare *ChartConfig       `json:"remote_share"`
	CountryMap  *ChartConfig       `json:"country_map"`
	Empty       bool               `json:"empty"`
}

// DashboardService computes dashboard payloads from a salary dataset.
type DashboardService struct {
	topRoles int
}

// NewDashboardService creates a dashboard service. topRoles bounds the
// roles bar chart (the source dashboard shows 10).
func NewDashboardService(topRoles int) *DashboardService {
	return &DashboardService{topRoles: topRoles}
}

// Build computes every dashboard panel from the filtered dataset. Panels
// are independent of each other, so they run concurrently over the shared
// immutable record slice. An empty subset yields zeroed metrics, nil
// charts, and Empty=true for the placeholder state.
func (s *DashboardService) Build(ctx context.Context, ds *salary.Dataset, showLegend bool) (*DashboardData, error) {
	data := &DashboardData{}
	if ds.Len() == 0 {
		data.Empty = true
		data.Metrics.FrequentRole = "-"
		return data, nil
	}

	records := ds.Records()
	salaries := ds.Salaries()

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		summary := stats.Summarize(salaries)
		data.Summary = summary
		data.Metrics = Metrics{
			MeanSalary:   roundTo(summary.Mean, 0),
			MaxSalary:    summary.Max,
			RecordCount:  summary.Count,
			FrequentRole: stats.Mode(column(records, func(r salary.Record) string { return r.Role })),
		}
		return nil
	})

	g.Go(func() error {
		roles := column(records, func(r salary.Record) string { return r.Role })
		data.TopRoles = buildTopRolesChart(stats.TopNByMean(roles, salaries, s.topRoles), showLegend)
		return nil
	})

	g.Go(func() error {
		data.Histogram = buildHistogramChart(stats.Histogram(salaries))
		return nil
	})

	g.Go(func() error {
		modes := column(records, func(r salary.Record) string { return r.RemoteMode })
		data.RemoteShare = buildRemoteChart(stats.ValueCounts(nonEmpty(modes)))
		return nil
	})

	g.Go(func() error {
		countries, countrySalaries := roleByCountry(records, choroplethRole)
		data.CountryMap = buildCountryChart(stats.MeanByKey(countries, countrySalaries), choroplethRole)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}

// roleByCountry extracts country codes and salaries for records matching
// one role, feeding the choropleth aggregation.
func roleByCountry(records []salary.Record, role string) ([]string, []float64) {
	var countries []string
	var salaries []float64
	for _, r := range records {
		if r.Role != role || r.CountryISO3 == "" {
			continue
		}
		countries = append(countries, r.CountryISO3)
		salaries = append(salaries, r.SalaryUSD)
	}
	return countries, salaries
}

func column(records []salary.Record, pick func(salary.Record) string) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = pick(r)
	}
	return out
}

func nonEmpty(values []string) []string {
	out := values[:0:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func roundTo(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}

func formatSalaryRange(lo, hi float64) string {
	return fmt.Sprintf("%.0fk-%.0fk", lo/1000, hi/1000)
}
