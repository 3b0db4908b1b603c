package user

import (
	"strings"
	"time"

	"github.com/careergist/careergist/pkg/kernel"
)

// Roles a user account can hold
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a registered account
type User struct {
	ID           kernel.UserID    `json:"id"`
	FirstName    kernel.FirstName `json:"firstName"`
	LastName     kernel.LastName  `json:"lastName"`
	Email        kernel.Email     `json:"email"`
	PasswordHash string           `json:"-"`
	Role         string           `json:"role"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

// FullName returns the display name, falling back to the email local part
// when both name fields are empty
func (u *User) FullName() string {
	name := strings.TrimSpace(string(u.FirstName) + " " + string(u.LastName))
	if name != "" {
		return name
	}
	email := u.Email.String()
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}

// IsAdmin checks whether the account has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
