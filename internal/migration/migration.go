package migration

import (
	"context"

	"github.com/jmoiron/sqlx"

	"salarydash/internal/errors"
)

// MigrationRunner handles database schema migrations
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{version: "1.0.0"}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createSalaryRecordsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create salary_records table")
	}
	if err := r.createSavedViewsTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create saved_views table")
	}
	if err := r.createIndexes(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create indexes")
	}
	return nil
}

func (r *MigrationRunner) createSalaryRecordsTable(ctx context.Context, db *sqlx.DB) error {
	query := `CREATE TABLE IF NOT EXISTS salary_records (
		id BIGSERIAL PRIMARY KEY,
		year INTEGER NOT NULL,
		seniority TEXT NOT NULL,
		contract TEXT NOT NULL,
		company_size TEXT NOT NULL,
		role TEXT NOT NULL,
		remote_mode TEXT,
		country_iso3 TEXT,
		salary_usd DOUBLE PRECISION NOT NULL
	)`
	_, err := db.ExecContext(ctx, query)
	return err
}

func (r *MigrationRunner) createSavedViewsTable(ctx context.Context, db *sqlx.DB) error {
	query := `CREATE TABLE IF NOT EXISTS saved_views (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		filter JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`
	_, err := db.ExecContext(ctx, query)
	return err
}

func (r *MigrationRunner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_salary_records_year ON salary_records(year)`,
		`CREATE INDEX IF NOT EXISTS idx_salary_records_role ON salary_records(role)`,
	}
	for _, query := range indexes {
		if _, err := db.ExecContext(ctx, query); err != nil {
			return err
		}
	}
	return nil
}
