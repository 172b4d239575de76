package ports

import (
	"context"

	"salarydash/domain/salary"
)

// DatasetRepository persists the salary dataset. Implementations must make
// ReplaceAll atomic so readers never observe a half-loaded dataset.
type DatasetRepository interface {
	ReplaceAll(ctx context.Context, records []salary.Record) error
	LoadAll(ctx context.Context) ([]salary.Record, error)
	Count(ctx context.Context) (int, error)
}
