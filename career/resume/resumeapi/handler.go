package resumeapi

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/careergist/careergist/career/resume"
	"github.com/careergist/careergist/career/resume/resumesrv"
	"github.com/careergist/careergist/pkg/iam/auth"
	"github.com/careergist/careergist/pkg/kernel"
)

// Handlers provides HTTP handlers for resume operations
type Handlers struct {
	service *resumesrv.ResumeService
}

// NewHandlers creates a new resume handlers instance
func NewHandlers(service *resumesrv.ResumeService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// RegisterRoutes mounts the resume endpoints
func RegisterRoutes(app *fiber.App, h *Handlers, authMiddleware *auth.TokenMiddleware) {
	resumes := app.Group("/api/v1/resumes", authMiddleware.Authenticate())

	resumes.Post("/import", h.ImportResume) // Convert uploaded PDF/image
	resumes.Post("/", h.CreateResume)       // Create manually
	resumes.Get("/", h.ListResumes)         // List own resumes
	resumes.Get("/:id", h.GetResume)        // Get by ID
	resumes.Put("/:id", h.UpdateResume)     // Update
	resumes.Delete("/:id", h.DeleteResume)  // Delete
}

// CreateResume creates a resume from markdown content
// POST /api/v1/resumes
func (h *Handlers) CreateResume(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	var req resume.CreateResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return resume.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	created, err := h.service.CreateResume(c.Context(), authCtx.UserID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// ImportResume converts an uploaded PDF or image into a markdown resume
// POST /api/v1/resumes/import
func (h *Handlers) ImportResume(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	file, err := c.FormFile("file")
	if err != nil {
		return resume.ErrInvalidRequest().WithDetail("file", "missing form file")
	}
	if file.Size > resumesrv.MaxImportFileSize {
		return resume.ErrFileTooLarge().WithDetail("size", file.Size)
	}

	src, err := file.Open()
	if err != nil {
		return resume.ErrInvalidRequest().WithDetail("file", "unreadable upload")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return resume.ErrInvalidRequest().WithDetail("file", "unreadable upload")
	}

	imported, err := h.service.ImportResume(
		c.Context(),
		authCtx.UserID,
		file.Filename,
		file.Header.Get(fiber.HeaderContentType),
		data,
	)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(imported)
}

// GetResume retrieves one of the caller's resumes
// GET /api/v1/resumes/:id
func (h *Handlers) GetResume(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	id := kernel.ResumeID(c.Params("id"))
	if id.IsEmpty() {
		return resume.ErrResumeNotFound().WithDetail("id", "missing or empty")
	}

	entity, err := h.service.GetResume(c.Context(), authCtx.UserID, id)
	if err != nil {
		return err
	}

	return c.JSON(entity)
}

// UpdateResume updates one of the caller's resumes
// PUT /api/v1/resumes/:id
func (h *Handlers) UpdateResume(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	id := kernel.ResumeID(c.Params("id"))
	if id.IsEmpty() {
		return resume.ErrResumeNotFound().WithDetail("id", "missing or empty")
	}

	var req resume.UpdateResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return resume.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	updated, err := h.service.UpdateResume(c.Context(), authCtx.UserID, id, req)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// DeleteResume deletes one of the caller's resumes
// DELETE /api/v1/resumes/:id
func (h *Handlers) DeleteResume(c *fiber.Ctx) error {
	authCtx, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrMissingToken()
	}

	id := kernel.ResumeID(c.Params("id"))
	if id.IsEmpty() {
		return resume.ErrResumeNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteResume(c.Context(), authCtx.UserID, id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ListResumes lists the caller's resumes
// GET /api/v1/resumes
func (h *Handlers) ListResumes(c *fiber.Ctx) error {
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

	result, err := h.service.ListResumes(c.Context(), authCtx.UserID, pagination)
	if err != nil {
		return err
	}

	return c.JSON(result)
}
