package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/careergist/careergist/pkg/errx"
	"github.com/careergist/careergist/pkg/iam/user"
	"github.com/careergist/careergist/pkg/kernel"
)

// AuthHandlers provides registration, login and identity endpoints
type AuthHandlers struct {
	userRepo  user.UserRepository
	tokens    TokenService
	passwords PasswordService
}

// NewAuthHandlers creates a new auth handlers instance
func NewAuthHandlers(userRepo user.UserRepository, tokens TokenService, passwords PasswordService) *AuthHandlers {
	return &AuthHandlers{
		userRepo:  userRepo,
		tokens:    tokens,
		passwords: passwords,
	}
}

// RegisterRoutes mounts the auth endpoints
func (h *AuthHandlers) RegisterRoutes(app *fiber.App, authMiddleware *TokenMiddleware) {
	app.Post("/api/v1/auth/register", h.Register)
	app.Post("/api/v1/auth/login", h.Login)
	app.Get("/api/v1/auth/me", authMiddleware.Authenticate(), h.Me)
}

// Register creates an account and issues a token
// POST /api/v1/auth/register
func (h *AuthHandlers) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	email := kernel.Email(strings.ToLower(strings.TrimSpace(req.Email)))
	if email.IsEmpty() || !strings.Contains(email.String(), "@") {
		return ErrInvalidRequest().WithDetail("email", "missing or malformed")
	}
	if req.Password == "" {
		return ErrInvalidRequest().WithDetail("password", "missing")
	}

	exists, err := h.userRepo.ExistsByEmail(c.Context(), email)
	if err != nil {
		return errx.Wrap(err, "failed to check existing email", errx.TypeInternal)
	}
	if exists {
		return user.ErrEmailTaken().WithDetail("email", email.String())
	}

	hash, err := h.passwords.Hash(req.Password)
	if err != nil {
		return errx.Wrap(err, "failed to hash password", errx.TypeInternal)
	}

	now := time.Now()
	newUser := &user.User{
		ID:           kernel.NewUserID(uuid.NewString()),
		FirstName:    kernel.FirstName(strings.TrimSpace(req.FirstName)),
		LastName:     kernel.LastName(strings.TrimSpace(req.LastName)),
		Email:        email,
		PasswordHash: hash,
		Role:         user.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.userRepo.Create(c.Context(), newUser); err != nil {
		return errx.Wrap(err, "failed to create user", errx.TypeInternal)
	}

	token, err := h.tokens.GenerateToken(newUser.ID)
	if err != nil {
		return errx.Wrap(err, "failed to issue token", errx.TypeInternal)
	}

	return c.Status(fiber.StatusCreated).JSON(TokenResponse{Token: token})
}

// Login verifies credentials and issues a token
// POST /api/v1/auth/login
func (h *AuthHandlers) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	email := kernel.Email(strings.ToLower(strings.TrimSpace(req.Email)))
	account, err := h.userRepo.GetByEmail(c.Context(), email)
	if err != nil {
		// do not leak whether the account exists
		return ErrInvalidCredentials()
	}

	if !h.passwords.Verify(account.PasswordHash, req.Password) {
		return ErrInvalidCredentials()
	}

	token, err := h.tokens.GenerateToken(account.ID)
	if err != nil {
		return errx.Wrap(err, "failed to issue token", errx.TypeInternal)
	}

	return c.JSON(TokenResponse{Token: token})
}

// Me returns the authenticated user's profile
// GET /api/v1/auth/me
func (h *AuthHandlers) Me(c *fiber.Ctx) error {
	authCtx, ok := GetAuthContext(c)
	if !ok {
		return ErrMissingToken()
	}

	account, err := h.userRepo.GetByID(c.Context(), authCtx.UserID)
	if err != nil {
		return err
	}

	return c.JSON(account)
}
