package app

import (
	"salarydash/domain/stats"
)

// Default color palette for chart series.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// ChartPoint is one labelled value in a chart series.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ChartConfig is a declarative chart description consumed by the page's
// rendering glue. The server owns all aggregation; the client only draws.
type ChartConfig struct {
	ChartType  string       `json:"chart_type"` // "bar", "histogram", "donut", "choropleth"
	Title      string       `json:"title"`
	XAxis      string       `json:"x_axis,omitempty"`
	YAxis      string       `json:"y_axis,omitempty"`
	ShowLegend bool         `json:"show_legend"`
	Points     []ChartPoint `json:"points"`
	Colors     []string     `json:"colors,omitempty"`
}

// buildTopRolesChart renders the top-N roles by mean salary as a
// horizontal bar chart, lowest of the top group first so the highest bar
// ends up on top.
func buildTopRolesChart(groups []stats.KeyedMean, showLegend bool) *ChartConfig {
	if len(groups) == 0 {
		return nil
	}

	points := make([]ChartPoint, 0, len(groups))
	for i := len(groups) - 1; i >= 0; i-- {
		points = append(points, ChartPoint{Label: groups[i].Key, Value: roundTo(groups[i].Mean, 0)})
	}

	return &ChartConfig{
		ChartType:  "bar",
		Title:      "Top roles by mean salary",
		XAxis:      "Mean annual salary (USD)",
		ShowLegend: showLegend,
		Points:     points,
		Colors:     assignColors(len(points)),
	}
}

// buildHistogramChart renders a salary distribution histogram. The bin
// count adapts to the sample via the Freedman-Diaconis estimator.
func buildHistogramChart(hist stats.HistogramResult) *ChartConfig {
	if len(hist.Bins) == 0 {
		return nil
	}

	points := make([]ChartPoint, 0, len(hist.Bins))
	for _, bin := range hist.Bins {
		points = append(points, ChartPoint{
			Label: formatSalaryRange(bin.Lower, bin.Upper),
			Value: float64(bin.Count),
		})
	}

	return &ChartConfig{
		ChartType: "histogram",
		Title:     "Annual salary distribution",
		XAxis:     "Salary range (USD)",
		YAxis:     "Records",
		Points:    points,
	}
}

// buildRemoteChart renders the remote/hybrid/on-site split as a donut.
func buildRemoteChart(counts []stats.KeyedCount) *ChartConfig {
	if len(counts) == 0 {
		return nil
	}

	points := make([]ChartPoint, 0, len(counts))
	for _, c := range counts {
		points = append(points, ChartPoint{Label: c.Key, Value: float64(c.Count)})
	}

	return &ChartConfig{
		ChartType:  "donut",
		Title:      "Work arrangement share",
		ShowLegend: true,
		Points:     points,
		Colors:     assignColors(len(points)),
	}
}

// buildCountryChart carries per-country mean salaries for the choropleth.
// Labels are ISO-3 country codes.
func buildCountryChart(groups []stats.KeyedMean, role string) *ChartConfig {
	if len(groups) == 0 {
		return nil
	}

	points := make([]ChartPoint, 0, len(groups))
	for _, g := range groups {
		points = append(points, ChartPoint{Label: g.Key, Value: roundTo(g.Mean, 0)})
	}

	return &ChartConfig{
		ChartType: "choropleth",
		Title:     "Mean " + role + " salary by country",
		YAxis:     "Mean salary (USD)",
		Points:    points,
	}
}

func assignColors(n int) []string {
	colors := make([]string, n)
	for i := range colors {
		colors[i] = defaultColors[i%len(defaultColors)]
	}
	return colors
}
