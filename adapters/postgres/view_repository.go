package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"salarydash/models"
	"salarydash/ports"
)

// viewRepository implements the ViewRepository interface
type viewRepository struct {
	db *sqlx.DB
}

// NewViewRepository creates a new saved view repository
func NewViewRepository(db *sqlx.DB) ports.ViewRepository {
	return &viewRepository{db: db}
}

// Save inserts a saved view, serializing the filter selections as JSON.
func (r *viewRepository) Save(ctx context.Context, view *models.SavedView) error {
	filterJSON, err := json.Marshal(view.Filter)
	if err != nil {
		return fmt.Errorf("failed to marshal filter: %w", err)
	}

	query := `INSERT INTO saved_views (id, name, filter, created_at) VALUES ($1, $2, $3, $4)`
	if _, err := r.db.ExecContext(ctx, query, view.ID, view.Name, filterJSON, view.CreatedAt); err != nil {
		return fmt.Errorf("failed to save view: %w", err)
	}
	return nil
}

// List retrieves all saved views, newest first.
func (r *viewRepository) List(ctx context.Context) ([]*models.SavedView, error) {
	query := `SELECT id, name, filter, created_at FROM saved_views ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved views: %w", err)
	}
	defer rows.Close()

	var views []*models.SavedView
	for rows.Next() {
		view, err := scanView(rows.Scan)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, rows.Err()
}

// Get retrieves a saved view by ID.
func (r *viewRepository) Get(ctx context.Context, id string) (*models.SavedView, error) {
	query := `SELECT id, name, filter, created_at FROM saved_views WHERE id = $1`

	view, err := scanView(r.db.QueryRowContext(ctx, query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("saved view not found: %s", id)
	}
	return view, err
}

// Delete removes a saved view by ID.
func (r *viewRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM saved_views WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete saved view: %w", err)
	}
	return nil
}

func scanView(scan func(dest ...interface{}) error) (*models.SavedView, error) {
	var view models.SavedView
	var filterJSON []byte

	if err := scan(&view.ID, &view.Name, &filterJSON, &view.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan saved view: %w", err)
	}
	if len(filterJSON) > 0 {
		if err := json.Unmarshal(filterJSON, &view.Filter); err != nil {
			return nil, fmt.Errorf("failed to unmarshal filter: %w", err)
		}
	}
	return &view, nil
}
