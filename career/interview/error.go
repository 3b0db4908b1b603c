package interview

import (
	"net/http"

	"github.com/careergist/careergist/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("INTERVIEW")

// Error codes
var (
	CodeInvalidRequest   = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
	CodeGenerationFailed = ErrRegistry.Register("GENERATION_FAILED", errx.TypeExternal, http.StatusBadGateway, "Question generation failed")
)

// Helper functions
func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrGenerationFailed() *errx.Error {
	return ErrRegistry.New(CodeGenerationFailed)
}
