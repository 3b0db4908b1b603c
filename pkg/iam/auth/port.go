package auth

import "github.com/careergist/careergist/pkg/kernel"

// TokenService issues and validates access tokens
type TokenService interface {
	// GenerateToken issues a signed access token for a user
	GenerateToken(userID kernel.UserID) (string, error)

	// ValidateToken verifies a token and returns the user it identifies
	ValidateToken(token string) (kernel.UserID, error)
}

// PasswordService hashes and verifies passwords
type PasswordService interface {
	// Hash derives a storable hash from a plaintext password
	Hash(password string) (string, error)

	// Verify checks a plaintext password against a stored hash
	Verify(hash, password string) bool
}
