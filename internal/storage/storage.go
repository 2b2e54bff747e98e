package storage

import (
	"context"
	"io"
	"net/http"
	"path"
	"strings"

	"go-emprecords/internal/shared/apperror"

	"github.com/google/uuid"
)

// Object is a single file to be stored. Body is consumed exactly once.
type Object struct {
	Key         string
	ContentType string
	Size        int64
	Body        io.Reader
}

//go:generate mockgen -source=storage.go -destination=mock/storage_mock.go -package=mock
type Storage interface {
	// Put stores obj and returns the URL under which it is reachable.
	Put(ctx context.Context, obj Object) (string, error)
	Name() string
}

var (
	ErrUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"File storage is temporarily unavailable",
		http.StatusServiceUnavailable,
	)
	ErrInvalidKey = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid file name",
		http.StatusBadRequest,
	)
	ErrUploadFailed = apperror.New(
		apperror.CodeInternalError,
		"File upload failed",
		http.StatusInternalServerError,
	)
)

// NewKey builds a collision free object key below prefix that keeps the
// extension of the uploaded file name.
func NewKey(prefix, filename string) string {
	ext := strings.ToLower(path.Ext(path.Base(strings.ReplaceAll(filename, "\\", "/"))))
	return path.Join(prefix, uuid.NewString()+ext)
}

// CleanKey normalizes key to a relative slash separated path and rejects
// anything that would escape the storage root.
func CleanKey(key string) (string, error) {
	key = strings.ReplaceAll(strings.TrimSpace(key), "\\", "/")
	if key == "" || strings.HasPrefix(key, "/") {
		return "", ErrInvalidKey
	}
	for _, part := range strings.Split(key, "/") {
		if part == ".." {
			return "", ErrInvalidKey
		}
	}
	cleaned := path.Clean(key)
	if cleaned == "." {
		return "", ErrInvalidKey
	}
	return cleaned, nil
}
