// Package fsx abstracts file storage behind a small port so services
// don't care whether files live in S3 or anywhere else.
package fsx

import (
	"context"
	"io"
)

// FileReader is the read-only subset of FileSystem
type FileReader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// FileSystem is the full file storage port
type FileSystem interface {
	FileReader

	// WriteFile stores the data at path, overwriting any existing object
	WriteFile(ctx context.Context, path string, data []byte) error

	// ReadFileStream returns a streaming reader; caller must close it
	ReadFileStream(ctx context.Context, path string) (io.ReadCloser, error)

	// DeleteFile removes the object at path
	DeleteFile(ctx context.Context, path string) error

	// Join composes a storage path from segments
	Join(segments ...string) string
}
