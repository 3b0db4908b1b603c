package suggestion

import (
	"net/http"

	"github.com/careergist/careergist/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("SUGGESTION")

// Error codes
var (
	CodeInvalidRequest     = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
	CodeCatalogUnavailable = ErrRegistry.Register("CATALOG_UNAVAILABLE", errx.TypeInternal, http.StatusInternalServerError, "Role catalog could not be loaded")
)

// Helper functions
func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrCatalogUnavailable() *errx.Error {
	return ErrRegistry.New(CodeCatalogUnavailable)
}
