package ports

import (
	"context"

	"salarydash/models"
)

// ViewRepository persists saved filter views.
type ViewRepository interface {
	Save(ctx context.Context, view *models.SavedView) error
	List(ctx context.Context) ([]*models.SavedView, error)
	Get(ctx context.Context, id string) (*models.SavedView, error)
	Delete(ctx context.Context, id string) error
}
