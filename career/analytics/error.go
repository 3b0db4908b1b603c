package analytics

import (
	"net/http"

	"github.com/careergist/careergist/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("ANALYTICS")

// Error codes
var (
	CodeNoJobData      = ErrRegistry.Register("NO_JOB_DATA", errx.TypeValidation, http.StatusBadRequest, "No job data provided")
	CodeInvalidRequest = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
)

// Helper functions
func ErrNoJobData() *errx.Error {
	return ErrRegistry.New(CodeNoJobData)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
