package interviewapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careergist/careergist/career/interview"
	"github.com/careergist/careergist/career/interview/interviewsrv"
	"github.com/careergist/careergist/pkg/iam/auth"
)

// Handlers provides HTTP handlers for interview question generation
type Handlers struct {
	service *interviewsrv.InterviewService
}

// NewHandlers creates a new interview handlers instance
func NewHandlers(service *interviewsrv.InterviewService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// RegisterRoutes mounts the interview endpoints
func RegisterRoutes(app *fiber.App, h *Handlers, authMiddleware *auth.TokenMiddleware) {
	app.Post("/api/v1/interview/questions", authMiddleware.Authenticate(), h.GenerateQuestions)
}

// GenerateQuestions generates practice questions for a job title
// POST /api/v1/interview/questions
func (h *Handlers) GenerateQuestions(c *fiber.Ctx) error {
	var req interview.GenerateQuestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return interview.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	questions, err := h.service.GenerateQuestions(c.Context(), req.Title)
	if err != nil {
		return err
	}

	return c.JSON(interview.QuestionsResponse{Questions: questions})
}
