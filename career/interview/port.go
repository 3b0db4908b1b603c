package interview

import "context"

// Generator produces free-form text for a prompt
type Generator interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
