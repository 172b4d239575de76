package models

import (
	"time"

	"github.com/google/uuid"

	"salarydash/domain/salary"
)

// SavedView is a named filter selection a user can return to later.
type SavedView struct {
	ID        string        `json:"id" db:"id"`
	Name      string        `json:"name" db:"name"`
	Filter    salary.Filter `json:"filter" db:"-"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
}

// NewSavedView creates a saved view with a fresh UUID.
func NewSavedView(name string, filter salary.Filter) *SavedView {
	return &SavedView{
		ID:        uuid.New().String(),
		Name:      name,
		Filter:    filter,
		CreatedAt: time.Now().UTC(),
	}
}
