package userinfra

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/careergist/careergist/pkg/iam/user"
	"github.com/careergist/careergist/pkg/kernel"
)

// PostgresUserRepository implements user.UserRepository using PostgreSQL
type PostgresUserRepository struct {
	db *sqlx.DB
}

// NewPostgresUserRepository creates a new PostgreSQL user repository
func NewPostgresUserRepository(db *sqlx.DB) *PostgresUserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

type userModel struct {
	ID           string    `db:"id"`
	FirstName    string    `db:"firstname"`
	LastName     string    `db:"lastname"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"passwordhash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"createdat"`
	UpdatedAt    time.Time `db:"updatedat"`
}

func (m *userModel) toEntity() *user.User {
	return &user.User{
		ID:           kernel.UserID(m.ID),
		FirstName:    kernel.FirstName(m.FirstName),
		LastName:     kernel.LastName(m.LastName),
		Email:        kernel.Email(m.Email),
		PasswordHash: m.PasswordHash,
		Role:         m.Role,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// Create creates a new user
func (r *PostgresUserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, firstname, lastname, email, passwordhash, role, createdat, updatedat)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		u.ID.String(),
		string(u.FirstName),
		string(u.LastName),
		u.Email.String(),
		u.PasswordHash,
		u.Role,
		u.CreatedAt,
		u.UpdatedAt,
	)
	return err
}

// Update updates an existing user
func (r *PostgresUserRepository) Update(ctx context.Context, id kernel.UserID, u *user.User) error {
	query := `
		UPDATE users
		SET firstname = $2, lastname = $3, email = $4, passwordhash = $5, role = $6, updatedat = $7
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		id.String(),
		string(u.FirstName),
		string(u.LastName),
		u.Email.String(),
		u.PasswordHash,
		u.Role,
		time.Now(),
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return user.ErrUserNotFound().WithDetail("id", id.String())
	}
	return nil
}

// GetByID retrieves a user by ID
func (r *PostgresUserRepository) GetByID(ctx context.Context, id kernel.UserID) (*user.User, error) {
	query := `
		SELECT id, firstname, lastname, email, passwordhash, role, createdat, updatedat
		FROM users
		WHERE id = $1
	`

	var m userModel
	if err := r.db.GetContext(ctx, &m, query, id.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrUserNotFound().WithDetail("id", id.String())
		}
		return nil, err
	}
	return m.toEntity(), nil
}

// GetByEmail retrieves a user by email
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email kernel.Email) (*user.User, error) {
	query := `
		SELECT id, firstname, lastname, email, passwordhash, role, createdat, updatedat
		FROM users
		WHERE email = $1
	`

	var m userModel
	if err := r.db.GetContext(ctx, &m, query, email.String()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrUserNotFound().WithDetail("email", email.String())
		}
		return nil, err
	}
	return m.toEntity(), nil
}

// ExistsByEmail checks if a user exists with the given email
func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, email.String()); err != nil {
		return false, err
	}
	return exists, nil
}
