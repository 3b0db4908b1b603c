package learning

import "context"

// CourseProvider searches an external course catalog
type CourseProvider interface {
	Search(ctx context.Context, query string, limit int) ([]Course, error)
}

// Generator produces free-form text for a prompt
type Generator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Cache stores computed recommendations keyed by a skills fingerprint
type Cache interface {
	Get(ctx context.Context, skillsHash string) (*ResourcesResponse, bool, error)
	Set(ctx context.Context, skillsHash string, resp *ResourcesResponse) error
}
