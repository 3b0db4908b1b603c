package user

import (
	"context"

	"github.com/careergist/careergist/pkg/kernel"
)

type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// Update updates an existing user
	Update(ctx context.Context, id kernel.UserID, user *User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id kernel.UserID) (*User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email kernel.Email) (*User, error)

	// ExistsByEmail checks if a user exists with the given email
	ExistsByEmail(ctx context.Context, email kernel.Email) (bool, error)
}
