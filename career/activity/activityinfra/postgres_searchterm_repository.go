package activityinfra

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/careergist/careergist/career/activity"
	"github.com/careergist/careergist/pkg/kernel"
)

// PostgresSearchTermRepository implements activity.SearchTermRepository using PostgreSQL
type PostgresSearchTermRepository struct {
	db *sqlx.DB
}

// NewPostgresSearchTermRepository creates a new PostgreSQL search-term repository
func NewPostgresSearchTermRepository(db *sqlx.DB) *PostgresSearchTermRepository {
	return &PostgresSearchTermRepository{
		db: db,
	}
}

type searchTermModel struct {
	ID        string    `db:"id"`
	UserID    string    `db:"userid"`
	Query     string    `db:"query"`
	CreatedAt time.Time `db:"createdat"`
}

func (m *searchTermModel) toEntity() *activity.SearchTerm {
	return &activity.SearchTerm{
		ID:        kernel.SearchTermID(m.ID),
		UserID:    kernel.UserID(m.UserID),
		Query:     m.Query,
		CreatedAt: m.CreatedAt,
	}
}

// Create logs a search entry
func (r *PostgresSearchTermRepository) Create(ctx context.Context, t *activity.SearchTerm) error {
	query := `
		INSERT INTO searchterms (id, userid, query, createdat)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.ExecContext(ctx, query,
		t.ID.String(),
		t.UserID.String(),
		t.Query,
		t.CreatedAt,
	)
	return err
}

// ListByUser retrieves a user's search entries, newest first
func (r *PostgresSearchTermRepository) ListByUser(ctx context.Context, userID kernel.UserID, limit int) ([]activity.SearchTerm, error) {
	query := `
		SELECT id, userid, query, createdat
		FROM searchterms
		WHERE userid = $1
		ORDER BY createdat DESC
		LIMIT $2
	`

	var models []searchTermModel
	if err := r.db.SelectContext(ctx, &models, query, userID.String(), limit); err != nil {
		return nil, err
	}

	terms := make([]activity.SearchTerm, 0, len(models))
	for i := range models {
		terms = append(terms, *models[i].toEntity())
	}
	return terms, nil
}
