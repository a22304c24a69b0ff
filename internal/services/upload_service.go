package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/connectin/connectin/internal/storage"
	"github.com/connectin/connectin/internal/utils"
)

type UploadService interface {
	// Upload stores an image under a per-user unique object name and
	// returns the URL to reference it by.
	Upload(ctx context.Context, userID uint64, fileName, contentType string, r io.Reader) (string, error)
}

type uploadService struct {
	uploader storage.Uploader
}

func NewUploadService(uploader storage.Uploader) UploadService {
	return &uploadService{uploader: uploader}
}

func (s *uploadService) Upload(ctx context.Context, userID uint64, fileName, contentType string, r io.Reader) (string, error) {
	const op = "UploadService.Upload"

	if s.uploader == nil {
		return "", utils.E(utils.CodeInternal, op, "uploader is not configured", nil)
	}

	objectName := fmt.Sprintf("%d-%s%s", userID, uuid.NewString(), filepath.Ext(fileName))
	url, err := s.uploader.Upload(ctx, objectName, contentType, r)
	if err != nil {
		return "", utils.E(utils.CodeUnavailable, op, "failed to store file", err)
	}
	return url, nil
}
