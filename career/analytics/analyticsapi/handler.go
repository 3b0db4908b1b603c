package analyticsapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careergist/careergist/career/analytics"
	"github.com/careergist/careergist/pkg/iam/auth"
)

// Handlers provides HTTP handlers for job analytics
type Handlers struct{}

// NewHandlers creates a new analytics handlers instance
func NewHandlers() *Handlers {
	return &Handlers{}
}

// RegisterRoutes mounts the analytics endpoints
func RegisterRoutes(app *fiber.App, h *Handlers, authMiddleware *auth.TokenMiddleware) {
	app.Post("/api/v1/analytics/salary-summary", authMiddleware.Authenticate(), h.SalarySummary)
}

// SalarySummary computes salary statistics over posted job listings
// POST /api/v1/analytics/salary-summary
func (h *Handlers) SalarySummary(c *fiber.Ctx) error {
	var req analytics.SalarySummaryRequest
	if err := c.BodyParser(&req); err != nil {
		return analytics.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	summary, err := analytics.Summarize(req.Jobs)
	if err != nil {
		return err
	}
	return c.JSON(summary)
}
