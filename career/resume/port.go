package resume

import (
	"context"

	"github.com/careergist/careergist/pkg/kernel"
)

type Repository interface {
	// Create creates a new resume
	Create(ctx context.Context, resume *Resume) error

	// Update updates an existing resume
	Update(ctx context.Context, id kernel.ResumeID, resume *Resume) error

	// GetByID retrieves a resume by ID
	GetByID(ctx context.Context, id kernel.ResumeID) (*Resume, error)

	// Delete deletes a resume by ID
	Delete(ctx context.Context, id kernel.ResumeID) error

	// ListByUser retrieves a user's resumes, newest first
	ListByUser(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[Resume], error)
}

// MarkdownConverter transcribes resume page images into markdown
type MarkdownConverter interface {
	ConvertPages(ctx context.Context, pages [][]byte) (string, error)
}
