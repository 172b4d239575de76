package dataload

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"salarydash/domain/salary"
	"salarydash/internal"
	"salarydash/internal/errors"
)

var logger = internal.NewLogger("dataload")

// columnAliases maps header names to canonical column keys. The source
// dataset ships with Portuguese headers; English aliases are accepted so
// re-exports of the same data load unchanged.
var columnAliases = map[string]string{
	"ano":              "year",
	"work_year":        "year",
	"year":             "year",
	"senioridade":      "seniority",
	"experience_level": "seniority",
	"seniority":        "seniority",
	"contrato":         "contract",
	"employment_type":  "contract",
	"contract":         "contract",
	"tamanho_empresa":  "company_size",
	"company_size":     "company_size",
	"cargo":            "role",
	"job_title":        "role",
	"role":             "role",
	"usd":              "salary_usd",
	"salary_in_usd":    "salary_usd",
	"salary_usd":       "salary_usd",
	"remoto":           "remote_mode",
	"remote_mode":      "remote_mode",
	"residencia_iso3":  "country_iso3",
	"country_iso3":     "country_iso3",
}

// Reader loads salary records from a CSV or XLSX file.
type Reader struct {
	filePath string
	fileType string // "csv" or "xlsx"
}

// ReadResult is a loaded dataset plus ingestion counters.
type ReadResult struct {
	Records []salary.Record
	Dropped int // rows skipped for missing or unparseable salary
}

// NewReader creates a reader, choosing the decoder from the file extension.
func NewReader(filePath string) *Reader {
	fileType := "csv"
	if strings.ToLower(filepath.Ext(filePath)) == ".xlsx" {
		fileType = "xlsx"
	}
	return &Reader{filePath: filePath, fileType: fileType}
}

// Read loads the file into salary records. Rows whose salary column is
// empty or non-numeric are dropped and counted, so downstream statistics
// never see missing values.
func (r *Reader) Read() (*ReadResult, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.NotFound("dataset file " + r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		rows, err = r.readCSVRows()
	}
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, errors.DataInvalid("dataset must have a header row and at least one data row")
	}

	result, err := parseRows(rows)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded %d records from %s (%d rows dropped)", len(result.Records), r.filePath, result.Dropped)
	return result, nil
}

func (r *Reader) readCSVRows() ([][]string, error) {
	f, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open CSV file")
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read CSV row")
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (r *Reader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open Excel file")
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read sheet %s", sheet)
	}
	return rows, nil
}

func parseRows(rows [][]string) (*ReadResult, error) {
	colIndex := make(map[string]int)
	for i, header := range rows[0] {
		key := strings.ToLower(strings.TrimSpace(header))
		if canonical, ok := columnAliases[key]; ok {
			colIndex[canonical] = i
		}
	}
	for _, required := range []string{"year", "seniority", "contract", "company_size", "role", "salary_usd"} {
		if _, ok := colIndex[required]; !ok {
			return nil, errors.DataInvalid("missing required column: " + required)
		}
	}

	result := &ReadResult{Records: make([]salary.Record, 0, len(rows)-1)}
	for _, row := range rows[1:] {
		record, ok := parseRecord(row, colIndex)
		if !ok {
			result.Dropped++
			continue
		}
		result.Records = append(result.Records, record)
	}
	return result, nil
}

func parseRecord(row []string, colIndex map[string]int) (salary.Record, bool) {
	cell := func(key string) string {
		idx, ok := colIndex[key]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	usd, err := strconv.ParseFloat(cell("salary_usd"), 64)
	if err != nil {
		return salary.Record{}, false
	}
	year, err := strconv.Atoi(cell("year"))
	if err != nil {
		return salary.Record{}, false
	}

	return salary.Record{
		Year:        year,
		Seniority:   cell("seniority"),
		Contract:    cell("contract"),
		CompanySize: cell("company_size"),
		Role:        cell("role"),
		RemoteMode:  cell("remote_mode"),
		CountryISO3: cell("country_iso3"),
		SalaryUSD:   usd,
	}, true
}
