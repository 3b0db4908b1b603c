package resume

import (
	"time"

	"github.com/careergist/careergist/pkg/kernel"
)

// Resume is a user-owned resume document stored as markdown text.
// OriginalURL points at the uploaded source file when the resume was
// imported rather than typed in.
type Resume struct {
	ID          kernel.ResumeID  `json:"id"`
	UserID      kernel.UserID    `json:"userId"`
	Title       string           `json:"title"`
	Content     string           `json:"content"`
	OriginalURL kernel.BucketURL `json:"originalUrl,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// IsOwnedBy checks resume ownership
func (r *Resume) IsOwnedBy(userID kernel.UserID) bool {
	return r.UserID == userID
}
