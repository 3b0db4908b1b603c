package learningapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careergist/careergist/career/learning"
	"github.com/careergist/careergist/career/learning/learningsrv"
	"github.com/careergist/careergist/pkg/iam/auth"
)

// Handlers provides HTTP handlers for course recommendations
type Handlers struct {
	service *learningsrv.LearningService
}

// NewHandlers creates a new learning handlers instance
func NewHandlers(service *learningsrv.LearningService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// RegisterRoutes mounts the learning-resource endpoints
func RegisterRoutes(app *fiber.App, h *Handlers, authMiddleware *auth.TokenMiddleware) {
	learningGroup := app.Group("/api/v1/learning-resources", authMiddleware.Authenticate())
	learningGroup.Get("/", h.RecommendForLatestResume)
	learningGroup.Post("/", h.Recommend)
}

// RecommendForLatestResume recommends courses from the user's latest resume
// GET /api/v1/learning-resources
func (h *Handlers) RecommendForLatestResume(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	resp, err := h.service.RecommendForLatestResume(c.Context(), authCtx.UserID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Recommend recommends courses from a resume supplied in the request
// POST /api/v1/learning-resources
func (h *Handlers) Recommend(c *fiber.Ctx) error {
	if _, ok := auth.GetAuthContext(c); !ok {
		return auth.ErrMissingToken()
	}

	var req learning.ResourcesRequest
	if err := c.BodyParser(&req); err != nil {
		return learning.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.Recommend(c.Context(), req.Resume)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
