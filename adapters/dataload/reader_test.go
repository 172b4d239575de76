package dataload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "salaries.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadCSVWithPortugueseHeaders(t *testing.T) {
	path := writeTempCSV(t,
		"ano,senioridade,contrato,tamanho_empresa,cargo,usd,remoto,residencia_iso3\n"+
			"2024,senior,full_time,large,Data Scientist,150000,remote,USA\n"+
			"2023,junior,part_time,small,Data Analyst,40000,onsite,BRA\n")

	result, err := NewReader(path).Read()
	require.NoError(t, err)
	require.Len(t, result.Records, 2)
	assert.Equal(t, 0, result.Dropped)

	first := result.Records[0]
	assert.Equal(t, 2024, first.Year)
	assert.Equal(t, "senior", first.Seniority)
	assert.Equal(t, "Data Scientist", first.Role)
	assert.Equal(t, "USA", first.CountryISO3)
	assert.Equal(t, 150000.0, first.SalaryUSD)
}

func TestReadCSVWithEnglishHeaders(t *testing.T) {
	path := writeTempCSV(t,
		"work_year,experience_level,employment_type,company_size,job_title,salary_in_usd,remote_mode,country_iso3\n"+
			"2024,mid,full_time,medium,Data Engineer,95000,hybrid,DEU\n")

	result, err := NewReader(path).Read()
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "Data Engineer", result.Records[0].Role)
}

func TestReadDropsRowsWithMissingSalary(t *testing.T) {
	path := writeTempCSV(t,
		"ano,senioridade,contrato,tamanho_empresa,cargo,usd\n"+
			"2024,senior,full_time,large,Data Scientist,150000\n"+
			"2024,junior,full_time,small,Data Analyst,\n"+
			"2024,mid,full_time,medium,Data Engineer,not_a_number\n")

	result, err := NewReader(path).Read()
	require.NoError(t, err)
	assert.Len(t, result.Records, 1)
	assert.Equal(t, 2, result.Dropped)
}

func TestReadRejectsMissingRequiredColumn(t *testing.T) {
	path := writeTempCSV(t, "ano,cargo\n2024,Data Scientist\n")

	_, err := NewReader(path).Read()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing required column")
}

func TestReadMissingFile(t *testing.T) {
	_, err := NewReader("/nonexistent/salaries.csv").Read()
	assert.Error(t, err)
}

func TestReadHeaderOnly(t *testing.T) {
	path := writeTempCSV(t, "ano,senioridade,contrato,tamanho_empresa,cargo,usd\n")
	_, err := NewReader(path).Read()
	assert.Error(t, err)
}
