package suggestioninfra

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/careergist/careergist/career/suggestion"
	"github.com/careergist/careergist/pkg/kernel"
)

// PostgresSuggestionRepository implements suggestion.Repository using PostgreSQL
type PostgresSuggestionRepository struct {
	db *sqlx.DB
}

// NewPostgresSuggestionRepository creates a new PostgreSQL suggestion repository
func NewPostgresSuggestionRepository(db *sqlx.DB) *PostgresSuggestionRepository {
	return &PostgresSuggestionRepository{
		db: db,
	}
}

type suggestionModel struct {
	ID              string         `db:"id"`
	UserID          string         `db:"userid"`
	SuggestedRoles  pq.StringArray `db:"suggestedroles"`
	SkillsExtracted pq.StringArray `db:"skillsextracted"`
	CreatedAt       time.Time      `db:"createdat"`
}

func (m *suggestionModel) toEntity() *suggestion.CareerSuggestion {
	return &suggestion.CareerSuggestion{
		ID:              kernel.SuggestionID(m.ID),
		UserID:          kernel.UserID(m.UserID),
		SuggestedRoles:  []string(m.SuggestedRoles),
		SkillsExtracted: []string(m.SkillsExtracted),
		CreatedAt:       m.CreatedAt,
	}
}

// Save stores a completed suggestion run
func (r *PostgresSuggestionRepository) Save(ctx context.Context, s *suggestion.CareerSuggestion) error {
	query := `
		INSERT INTO careersuggestions (id, userid, suggestedroles, skillsextracted, createdat)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(ctx, query,
		s.ID.String(),
		s.UserID.String(),
		pq.Array(s.SuggestedRoles),
		pq.Array(s.SkillsExtracted),
		s.CreatedAt,
	)
	return err
}

// ListByUser retrieves a user's past suggestion runs, newest first
func (r *PostgresSuggestionRepository) ListByUser(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[suggestion.CareerSuggestion], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM careersuggestions WHERE userid = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, userID.String()); err != nil {
		return nil, err
	}

	query := `
		SELECT id, userid, suggestedroles, skillsextracted, createdat
		FROM careersuggestions
		WHERE userid = $1
		ORDER BY createdat DESC
		LIMIT $2 OFFSET $3
	`

	var models []suggestionModel
	offset := (pagination.Page - 1) * pagination.PageSize
	if err := r.db.SelectContext(ctx, &models, query, userID.String(), pagination.PageSize, offset); err != nil {
		return nil, err
	}

	items := make([]suggestion.CareerSuggestion, 0, len(models))
	for i := range models {
		items = append(items, *models[i].toEntity())
	}

	return kernel.NewPaginated(items, pagination.Page, pagination.PageSize, total), nil
}
