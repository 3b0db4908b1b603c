package activityinfra

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/careergist/careergist/career/activity"
	"github.com/careergist/careergist/pkg/kernel"
)

// PostgresFavoriteRepository implements activity.FavoriteRepository using PostgreSQL
type PostgresFavoriteRepository struct {
	db *sqlx.DB
}

// NewPostgresFavoriteRepository creates a new PostgreSQL favorite repository
func NewPostgresFavoriteRepository(db *sqlx.DB) *PostgresFavoriteRepository {
	return &PostgresFavoriteRepository{
		db: db,
	}
}

type favoriteModel struct {
	ID          string          `db:"id"`
	UserID      string          `db:"userid"`
	Title       string          `db:"title"`
	Company     string          `db:"company"`
	ExternalID  sql.NullString  `db:"jobid"`
	Location    sql.NullString  `db:"location"`
	Description sql.NullString  `db:"description"`
	SalaryMin   sql.NullFloat64 `db:"salarymin"`
	SalaryMax   sql.NullFloat64 `db:"salarymax"`
	CreatedAt   time.Time       `db:"createdat"`
	UpdatedAt   time.Time       `db:"updatedat"`
}

func (m *favoriteModel) toEntity() *activity.FavoriteJob {
	f := &activity.FavoriteJob{
		ID:          kernel.FavoriteID(m.ID),
		UserID:      kernel.UserID(m.UserID),
		Title:       m.Title,
		Company:     m.Company,
		ExternalID:  m.ExternalID.String,
		Location:    m.Location.String,
		Description: m.Description.String,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.SalaryMin.Valid {
		f.SalaryMin = &m.SalaryMin.Float64
	}
	if m.SalaryMax.Valid {
		f.SalaryMax = &m.SalaryMax.Float64
	}
	return f
}

// Create creates a new favorite
func (r *PostgresFavoriteRepository) Create(ctx context.Context, f *activity.FavoriteJob) error {
	query := `
		INSERT INTO favorites (id, userid, title, company, jobid, location, description, salarymin, salarymax, createdat, updatedat)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), $8, $9, $10, $11)
	`

	_, err := r.db.ExecContext(ctx, query,
		f.ID.String(),
		f.UserID.String(),
		f.Title,
		f.Company,
		f.ExternalID,
		f.Location,
		f.Description,
		f.SalaryMin,
		f.SalaryMax,
		f.CreatedAt,
		f.UpdatedAt,
	)
	return err
}

// GetByID retrieves a favorite by ID
func (r *PostgresFavoriteRepository) GetByID(ctx context.Context, id kernel.FavoriteID) (*activity.FavoriteJob, error) {
	query := `
		SELECT id, userid, title, company, jobid, location, description, salarymin, salarymax, createdat, updatedat
		FROM favorites
		WHERE id = $1
	`

	var m favoriteModel
	if err := r.db.GetContext(ctx, &m, query, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, activity.ErrFavoriteNotFound().WithDetail("id", id.String())
		}
		return nil, err
	}
	return m.toEntity(), nil
}

// Delete deletes a favorite by ID
func (r *PostgresFavoriteRepository) Delete(ctx context.Context, id kernel.FavoriteID) error {
	query := `DELETE FROM favorites WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id.String())
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return activity.ErrFavoriteNotFound().WithDetail("id", id.String())
	}
	return nil
}

// ListByUser retrieves a user's favorites, newest first
func (r *PostgresFavoriteRepository) ListByUser(ctx context.Context, userID kernel.UserID) ([]activity.FavoriteJob, error) {
	query := `
		SELECT id, userid, title, company, jobid, location, description, salarymin, salarymax, createdat, updatedat
		FROM favorites
		WHERE userid = $1
		ORDER BY createdat DESC
	`

	var models []favoriteModel
	if err := r.db.SelectContext(ctx, &models, query, userID.String()); err != nil {
		return nil, err
	}

	favorites := make([]activity.FavoriteJob, 0, len(models))
	for i := range models {
		favorites = append(favorites, *models[i].toEntity())
	}
	return favorites, nil
}
