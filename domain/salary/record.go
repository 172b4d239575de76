package salary

// Record is a single salary observation from the dataset.
// Salaries are annualized and converted to USD upstream.
type Record struct {
	Year        int     `json:"year" db:"year"`
	Seniority   string  `json:"seniority" db:"seniority"`
	Contract    string  `json:"contract" db:"contract"`
	CompanySize string  `json:"company_size" db:"company_size"`
	Role        string  `json:"role" db:"role"`
	RemoteMode  string  `json:"remote_mode" db:"remote_mode"`
	CountryISO3 string  `json:"country_iso3" db:"country_iso3"`
	SalaryUSD   float64 `json:"salary_usd" db:"salary_usd"`
}

// Dimension identifies a filterable categorical column.
type Dimension string

const (
	DimYear        Dimension = "year"
	DimSeniority   Dimension = "seniority"
	DimContract    Dimension = "contract"
	DimCompanySize Dimension = "company_size"
)

// FilterDimensions lists the dimensions exposed as filter widgets, in
// display order.
var FilterDimensions = []Dimension{DimYear, DimSeniority, DimContract, DimCompanySize}
