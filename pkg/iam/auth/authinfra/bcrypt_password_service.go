package authinfra

import "golang.org/x/crypto/bcrypt"

// BcryptPasswordService implements auth.PasswordService with bcrypt
type BcryptPasswordService struct {
	cost int
}

// NewBcryptPasswordService creates a new bcrypt password service
func NewBcryptPasswordService() *BcryptPasswordService {
	return &BcryptPasswordService{
		cost: bcrypt.DefaultCost,
	}
}

// Hash derives a storable hash from a plaintext password
func (s *BcryptPasswordService) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify checks a plaintext password against a stored hash
func (s *BcryptPasswordService) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
