package suggestion

import (
	"context"

	"github.com/careergist/careergist/pkg/kernel"
)

// CatalogRepository reads the role catalog. Implementations normalize
// required skills to the canonical title-cased form and skip malformed
// rows instead of failing the whole read.
type CatalogRepository interface {
	// ListRoles retrieves every well-formed role catalog entry
	ListRoles(ctx context.Context) ([]RoleRecord, error)
}

type Repository interface {
	// Save stores a completed suggestion run
	Save(ctx context.Context, suggestion *CareerSuggestion) error

	// ListByUser retrieves a user's past suggestion runs, newest first
	ListByUser(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[CareerSuggestion], error)
}

// Generator produces free-form text for a prompt. Failures are recoverable;
// the pipeline substitutes FallbackExplanation.
type Generator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Cache stores computed responses keyed by user and resume content hash.
// A miss is (nil, false, nil); cache errors are non-fatal to callers.
type Cache interface {
	Get(ctx context.Context, userID kernel.UserID, resumeHash string) (*SuggestResponse, bool, error)
	Set(ctx context.Context, userID kernel.UserID, resumeHash string, resp *SuggestResponse) error
}
