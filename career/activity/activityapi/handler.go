package activityapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careergist/careergist/career/activity"
	"github.com/careergist/careergist/career/activity/activitysrv"
	"github.com/careergist/careergist/pkg/iam/auth"
	"github.com/careergist/careergist/pkg/kernel"
)

// Handlers provides HTTP handlers for favorites, search logging and the
// dashboard
type Handlers struct {
	service *activitysrv.ActivityService
}

// NewHandlers creates a new activity handlers instance
func NewHandlers(service *activitysrv.ActivityService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// RegisterRoutes mounts the activity endpoints
func RegisterRoutes(app *fiber.App, h *Handlers, authMiddleware *auth.TokenMiddleware) {
	group := app.Group("/api/v1", authMiddleware.Authenticate())

	group.Post("/favorites", h.CreateFavorite)
	group.Get("/favorites", h.ListFavorites)
	group.Delete("/favorites/:id", h.DeleteFavorite)

	group.Post("/searches", h.LogSearch)
	group.Get("/dashboard", h.Dashboard)
}

// CreateFavorite saves a job posting
// POST /api/v1/favorites
func (h *Handlers) CreateFavorite(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req activity.CreateFavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return activity.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	favorite, err := h.service.CreateFavorite(c.Context(), authCtx.UserID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(favorite)
}

// ListFavorites lists the caller's favorites
// GET /api/v1/favorites
func (h *Handlers) ListFavorites(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	favorites, err := h.service.ListFavorites(c.Context(), authCtx.UserID)
	if err != nil {
		return err
	}

	return c.JSON(favorites)
}

// DeleteFavorite removes one of the caller's favorites
// DELETE /api/v1/favorites/:id
func (h *Handlers) DeleteFavorite(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	id := kernel.FavoriteID(c.Params("id"))
	if id.IsEmpty() {
		return activity.ErrFavoriteNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteFavorite(c.Context(), authCtx.UserID, id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// LogSearch records a search-bar entry
// POST /api/v1/searches
func (h *Handlers) LogSearch(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req activity.LogSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return activity.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	term, err := h.service.LogSearch(c.Context(), authCtx.UserID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(term)
}

// Dashboard aggregates the caller's resumes, favorites and keywords
// GET /api/v1/dashboard
func (h *Handlers) Dashboard(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	dashboard, err := h.service.Dashboard(c.Context(), authCtx.UserID)
	if err != nil {
		return err
	}

	return c.JSON(dashboard)
}
