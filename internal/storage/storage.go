package storage

import (
	"context"
	"io"
)

// Uploader stores an uploaded object and returns the URL clients use to
// fetch it back.
type Uploader interface {
	Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (string, error)
}
