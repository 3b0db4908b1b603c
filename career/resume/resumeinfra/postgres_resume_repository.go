package resumeinfra

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/careergist/careergist/career/resume"
	"github.com/careergist/careergist/pkg/kernel"
)

// PostgresResumeRepository implements resume.Repository using PostgreSQL
type PostgresResumeRepository struct {
	db *sqlx.DB
}

// NewPostgresResumeRepository creates a new PostgreSQL resume repository
func NewPostgresResumeRepository(db *sqlx.DB) *PostgresResumeRepository {
	return &PostgresResumeRepository{
		db: db,
	}
}

type resumeModel struct {
	ID          string         `db:"id"`
	UserID      string         `db:"userid"`
	Title       string         `db:"title"`
	Content     string         `db:"content"`
	OriginalURL sql.NullString `db:"originalurl"`
	CreatedAt   time.Time      `db:"createdat"`
	UpdatedAt   time.Time      `db:"updatedat"`
}

func (m *resumeModel) toEntity() *resume.Resume {
	return &resume.Resume{
		ID:          kernel.ResumeID(m.ID),
		UserID:      kernel.UserID(m.UserID),
		Title:       m.Title,
		Content:     m.Content,
		OriginalURL: kernel.BucketURL(m.OriginalURL.String),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// Create creates a new resume
func (r *PostgresResumeRepository) Create(ctx context.Context, entity *resume.Resume) error {
	query := `
		INSERT INTO resumes (id, userid, title, content, originalurl, createdat, updatedat)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		entity.ID.String(),
		entity.UserID.String(),
		entity.Title,
		entity.Content,
		string(entity.OriginalURL),
		entity.CreatedAt,
		entity.UpdatedAt,
	)
	return err
}

// Update updates an existing resume
func (r *PostgresResumeRepository) Update(ctx context.Context, id kernel.ResumeID, entity *resume.Resume) error {
	query := `
		UPDATE resumes
		SET title = $2, content = $3, originalurl = NULLIF($4, ''), updatedat = $5
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		id.String(),
		entity.Title,
		entity.Content,
		string(entity.OriginalURL),
		entity.UpdatedAt,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return resume.ErrResumeNotFound().WithDetail("id", id.String())
	}
	return nil
}

// GetByID retrieves a resume by ID
func (r *PostgresResumeRepository) GetByID(ctx context.Context, id kernel.ResumeID) (*resume.Resume, error) {
	query := `
		SELECT id, userid, title, content, originalurl, createdat, updatedat
		FROM resumes
		WHERE id = $1
	`

	var m resumeModel
	if err := r.db.GetContext(ctx, &m, query, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, resume.ErrResumeNotFound().WithDetail("id", id.String())
		}
		return nil, err
	}
	return m.toEntity(), nil
}

// Delete deletes a resume by ID
func (r *PostgresResumeRepository) Delete(ctx context.Context, id kernel.ResumeID) error {
	query := `DELETE FROM resumes WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id.String())
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return resume.ErrResumeNotFound().WithDetail("id", id.String())
	}
	return nil
}

// ListByUser retrieves a user's resumes, newest first
func (r *PostgresResumeRepository) ListByUser(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[resume.Resume], error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM resumes WHERE userid = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, userID.String()); err != nil {
		return nil, err
	}

	query := `
		SELECT id, userid, title, content, originalurl, createdat, updatedat
		FROM resumes
		WHERE userid = $1
		ORDER BY createdat DESC
		LIMIT $2 OFFSET $3
	`

	var models []resumeModel
	offset := (pagination.Page - 1) * pagination.PageSize
	if err := r.db.SelectContext(ctx, &models, query, userID.String(), pagination.PageSize, offset); err != nil {
		return nil, err
	}

	items := make([]resume.Resume, 0, len(models))
	for i := range models {
		items = append(items, *models[i].toEntity())
	}

	return kernel.NewPaginated(items, pagination.Page, pagination.PageSize, total), nil
}
