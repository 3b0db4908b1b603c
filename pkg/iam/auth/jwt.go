package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/careergist/careergist/pkg/kernel"
)

// JWTService implements TokenService with HMAC-signed JWTs
type JWTService struct {
	secretKey []byte
	ttl       time.Duration
	issuer    string
}

// NewJWTService creates a new JWT token service
func NewJWTService(secretKey string, ttl time.Duration, issuer string) *JWTService {
	return &JWTService{
		secretKey: []byte(secretKey),
		ttl:       ttl,
		issuer:    issuer,
	}
}

// GenerateToken issues a signed access token for a user
func (s *JWTService) GenerateToken(userID kernel.UserID) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

// ValidateToken verifies a token and returns the user it identifies
func (s *JWTService) ValidateToken(tokenString string) (kernel.UserID, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return s.secretKey, nil
		},
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken().WithCause(err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken().WithDetail("reason", "missing subject claim")
	}
	return kernel.UserID(claims.Subject), nil
}
