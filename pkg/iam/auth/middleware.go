package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/careergist/careergist/pkg/kernel"
)

const authContextKey = "auth_context"

// AuthContext is the authenticated identity attached to a request
type AuthContext struct {
	UserID kernel.UserID
}

// TokenMiddleware authenticates requests with a bearer token
type TokenMiddleware struct {
	tokens TokenService
}

// NewAuthMiddleware creates a token-based auth middleware
func NewAuthMiddleware(tokens TokenService) *TokenMiddleware {
	return &TokenMiddleware{
		tokens: tokens,
	}
}

// Authenticate validates the Authorization header and stores the auth
// context for downstream handlers
func (m *TokenMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return ErrMissingToken()
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" || token == header {
			return ErrInvalidToken().WithDetail("reason", "malformed authorization header")
		}

		userID, err := m.tokens.ValidateToken(token)
		if err != nil {
			return err
		}

		c.Locals(authContextKey, AuthContext{UserID: userID})
		return c.Next()
	}
}

// GetAuthContext retrieves the authenticated identity from the request
func GetAuthContext(c *fiber.Ctx) (AuthContext, bool) {
	authCtx, ok := c.Locals(authContextKey).(AuthContext)
	return authCtx, ok
}
