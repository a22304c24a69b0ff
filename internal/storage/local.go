package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// LocalUploader writes objects to a directory on disk. The returned URL
// is the relative path the router serves statically under /uploads.
type LocalUploader struct {
	dir string
}

func NewLocalUploader(dir string) (*LocalUploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalUploader{dir: dir}, nil
}

func (u *LocalUploader) Upload(_ context.Context, objectName string, _ string, r io.Reader) (string, error) {
	// objectName is generated server-side, but strip any path components
	// so a crafted name cannot escape the upload directory.
	objectName = filepath.Base(objectName)

	f, err := os.Create(filepath.Join(u.dir, objectName))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return "uploads/" + objectName, nil
}
