package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"salarydash/domain/salary"
	"salarydash/ports"
)

// datasetRepository implements the DatasetRepository interface
type datasetRepository struct {
	db *sqlx.DB
}

// NewDatasetRepository creates a new dataset repository
func NewDatasetRepository(db *sqlx.DB) ports.DatasetRepository {
	return &datasetRepository{db: db}
}

// ReplaceAll swaps the stored dataset for the given records in a single
// transaction, so concurrent readers see either the old or new dataset.
func (r *datasetRepository) ReplaceAll(ctx context.Context, records []salary.Record) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM salary_records`); err != nil {
		return fmt.Errorf("failed to clear salary_records: %w", err)
	}

	query := `INSERT INTO salary_records (
		year, seniority, contract, company_size, role, remote_mode, country_iso3, salary_usd
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	for _, rec := range records {
		_, err := tx.ExecContext(ctx, query,
			rec.Year, rec.Seniority, rec.Contract, rec.CompanySize,
			rec.Role, rec.RemoteMode, rec.CountryISO3, rec.SalaryUSD,
		)
		if err != nil {
			return fmt.Errorf("failed to insert salary record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit dataset replace: %w", err)
	}
	return nil
}

// LoadAll retrieves every stored salary record in insertion order.
func (r *datasetRepository) LoadAll(ctx context.Context) ([]salary.Record, error) {
	query := `SELECT
		year, seniority, contract, company_size, role,
		COALESCE(remote_mode, '') AS remote_mode,
		COALESCE(country_iso3, '') AS country_iso3,
		salary_usd
	FROM salary_records ORDER BY id`

	var records []salary.Record
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("failed to load salary records: %w", err)
	}
	return records, nil
}

// Count returns the number of stored records.
func (r *datasetRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM salary_records`); err != nil {
		return 0, fmt.Errorf("failed to count salary records: %w", err)
	}
	return count, nil
}
