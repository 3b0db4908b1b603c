package resume

import (
	"net/http"

	"github.com/careergist/careergist/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("RESUME")

// Error codes
var (
	CodeResumeNotFound      = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Resume not found")
	CodeInvalidRequest      = ErrRegistry.Register("INVALID_REQUEST", errx.TypeValidation, http.StatusBadRequest, "Invalid request data")
	CodeFileTooLarge        = ErrRegistry.Register("FILE_TOO_LARGE", errx.TypeValidation, http.StatusBadRequest, "File size exceeds maximum allowed")
	CodeUnsupportedFileType = ErrRegistry.Register("UNSUPPORTED_FILE_TYPE", errx.TypeValidation, http.StatusBadRequest, "Unsupported file type")
	CodeImportFailed        = ErrRegistry.Register("IMPORT_FAILED", errx.TypeExternal, http.StatusBadGateway, "Resume import failed")
)

// Helper functions
func ErrResumeNotFound() *errx.Error {
	return ErrRegistry.New(CodeResumeNotFound)
}

func ErrInvalidRequest() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequest)
}

func ErrFileTooLarge() *errx.Error {
	return ErrRegistry.New(CodeFileTooLarge)
}

func ErrUnsupportedFileType() *errx.Error {
	return ErrRegistry.New(CodeUnsupportedFileType)
}

func ErrImportFailed() *errx.Error {
	return ErrRegistry.New(CodeImportFailed)
}
