package learning

import (
	"net/http"

	"github.com/careergist/careergist/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("LEARNING")

// Error codes
var (
	CodeInvalidRequest      = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
	CodeProviderUnavailable = ErrRegistry.Register("PROVIDER_UNAVAILABLE", errx.TypeExternal, http.StatusBadGateway, "Course provider is unavailable")
)

// Helper functions
func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrProviderUnavailable() *errx.Error {
	return ErrRegistry.New(CodeProviderUnavailable)
}
