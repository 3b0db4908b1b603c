package activity

import (
	"net/http"

	"github.com/careergist/careergist/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("ACTIVITY")

// Error codes
var (
	CodeFavoriteNotFound = ErrRegistry.Register("FAVORITE_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Favorite not found")
	CodeInvalidRequest   = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
)

// Helper functions
func ErrFavoriteNotFound() *errx.Error {
	return ErrRegistry.New(CodeFavoriteNotFound)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}
