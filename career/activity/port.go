package activity

import (
	"context"

	"github.com/careergist/careergist/pkg/kernel"
)

type FavoriteRepository interface {
	// Create creates a new favorite
	Create(ctx context.Context, favorite *FavoriteJob) error

	// GetByID retrieves a favorite by ID
	GetByID(ctx context.Context, id kernel.FavoriteID) (*FavoriteJob, error)

	// Delete deletes a favorite by ID
	Delete(ctx context.Context, id kernel.FavoriteID) error

	// ListByUser retrieves a user's favorites, newest first
	ListByUser(ctx context.Context, userID kernel.UserID) ([]FavoriteJob, error)
}

type SearchTermRepository interface {
	// Create logs a search entry
	Create(ctx context.Context, term *SearchTerm) error

	// ListByUser retrieves a user's search entries, newest first
	ListByUser(ctx context.Context, userID kernel.UserID, limit int) ([]SearchTerm, error)
}
