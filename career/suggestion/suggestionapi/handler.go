package suggestionapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/careergist/careergist/career/suggestion"
	"github.com/careergist/careergist/career/suggestion/suggestionsrv"
	"github.com/careergist/careergist/pkg/iam/auth"
	"github.com/careergist/careergist/pkg/kernel"
)

// Handlers provides HTTP handlers for career suggestions
type Handlers struct {
	service *suggestionsrv.SuggestionService
}

// NewHandlers creates a new suggestion handlers instance
func NewHandlers(service *suggestionsrv.SuggestionService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// RegisterRoutes mounts the suggestion endpoints
func RegisterRoutes(app *fiber.App, h *Handlers, authMiddleware *auth.TokenMiddleware) {
	group := app.Group("/api/v1/career-suggestions", authMiddleware.Authenticate())

	group.Post("/", h.Suggest)
	group.Get("/", h.ListSuggestions)
}

// Suggest generates and stores career suggestions for a resume
// POST /api/v1/career-suggestions
func (h *Handlers) Suggest(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req suggestion.SuggestRequest
	if err := c.BodyParser(&req); err != nil {
		return suggestion.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}
	if strings.TrimSpace(req.Resume) == "" {
		return suggestion.ErrInvalidRequest().WithDetail("resume", "missing or empty")
	}

	resp, err := h.service.Suggest(c.Context(), authCtx.UserID, req.Resume)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// ListSuggestions retrieves the user's past suggestion runs
// GET /api/v1/career-suggestions
func (h *Handlers) ListSuggestions(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	pagination := kernel.PaginationOptions{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("page_size", 20),
	}
	if pagination.Page < 1 {
		pagination.Page = 1
	}
	if pagination.PageSize < 1 || pagination.PageSize > 100 {
		pagination.PageSize = 20
	}

	result, err := h.service.ListSuggestions(c.Context(), authCtx.UserID, pagination)
	if err != nil {
		return err
	}

	return c.JSON(result)
}
