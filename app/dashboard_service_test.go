package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salarydash/domain/salary"
)

func testDataset() *salary.Dataset {
	return salary.NewDataset([]salary.Record{
		{Year: 2024, Seniority: "senior", Contract: "full_time", CompanySize: "large", Role: "Data Scientist", RemoteMode: "remote", CountryISO3: "USA", SalaryUSD: 160000},
		{Year: 2024, Seniority: "mid", Contract: "full_time", CompanySize: "large", Role: "Data Scientist", RemoteMode: "remote", CountryISO3: "DEU", SalaryUSD: 120000},
		{Year: 2024, Seniority: "junior", Contract: "full_time", CompanySize: "small", Role: "Data Analyst", RemoteMode: "onsite", CountryISO3: "BRA", SalaryUSD: 45000},
		{Year: 2023, Seniority: "senior", Contract: "contract", CompanySize: "medium", Role: "Data Engineer", RemoteMode: "hybrid", CountryISO3: "USA", SalaryUSD: 130000},
		{Year: 2023, Seniority: "mid", Contract: "full_time", CompanySize: "medium", Role: "Data Engineer", RemoteMode: "remote", CountryISO3: "GBR", SalaryUSD: 105000},
	})
}

func TestBuildDashboardMetrics(t *testing.T) {
	svc := NewDashboardService(10)
	data, err := svc.Build(context.Background(), testDataset(), false)
	require.NoError(t, err)

	assert.False(t, data.Empty)
	assert.Equal(t, 5, data.Metrics.RecordCount)
	assert.Equal(t, 160000.0, data.Metrics.MaxSalary)
	assert.InDelta(t, 112000, data.Metrics.MeanSalary, 0.5)
	// Two-way tie between roles breaks alphabetically.
	assert.Equal(t, "Data Engineer", data.Metrics.FrequentRole)
}

func TestBuildDashboardCharts(t *testing.T) {
	svc := NewDashboardService(10)
	data, err := svc.Build(context.Background(), testDataset(), false)
	require.NoError(t, err)

	require.NotNil(t, data.TopRoles)
	assert.Equal(t, "bar", data.TopRoles.ChartType)
	assert.False(t, data.TopRoles.ShowLegend)
	// Highest mean last so it renders at the top of the horizontal chart.
	last := data.TopRoles.Points[len(data.TopRoles.Points)-1]
	assert.Equal(t, "Data Scientist", last.Label)
	assert.Equal(t, 140000.0, last.Value)

	require.NotNil(t, data.Histogram)
	assert.Equal(t, "histogram", data.Histogram.ChartType)

	require.NotNil(t, data.RemoteShare)
	assert.Equal(t, "donut", data.RemoteShare.ChartType)
	assert.Equal(t, "remote", data.RemoteShare.Points[0].Label)
	assert.Equal(t, 3.0, data.RemoteShare.Points[0].Value)

	require.NotNil(t, data.CountryMap)
	assert.Equal(t, "choropleth", data.CountryMap.ChartType)
	// Only Data Scientist records feed the country panel.
	assert.Len(t, data.CountryMap.Points, 2)
}

func TestBuildDashboardLegendToggle(t *testing.T) {
	svc := NewDashboardService(10)
	data, err := svc.Build(context.Background(), testDataset(), true)
	require.NoError(t, err)
	assert.True(t, data.TopRoles.ShowLegend)
}

func TestBuildDashboardTopRolesLimit(t *testing.T) {
	svc := NewDashboardService(2)
	data, err := svc.Build(context.Background(), testDataset(), false)
	require.NoError(t, err)
	assert.Len(t, data.TopRoles.Points, 2)
}

func TestBuildDashboardEmptySubset(t *testing.T) {
	svc := NewDashboardService(10)
	data, err := svc.Build(context.Background(), salary.NewDataset(nil), false)
	require.NoError(t, err)

	assert.True(t, data.Empty)
	assert.Equal(t, 0, data.Metrics.RecordCount)
	assert.Equal(t, "-", data.Metrics.FrequentRole)
	assert.Nil(t, data.TopRoles)
	assert.Nil(t, data.Histogram)
	assert.Nil(t, data.RemoteShare)
	assert.Nil(t, data.CountryMap)
}
