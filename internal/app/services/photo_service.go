package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/schoollink/schoollink-api/internal/app/models/dto"
	"github.com/schoollink/schoollink-api/internal/pkg/apperrors"
	"github.com/schoollink/schoollink-api/internal/pkg/filestorage"
	"github.com/schoollink/schoollink-api/internal/pkg/logger"
	"github.com/schoollink/schoollink-api/internal/pkg/thumbnail"
)

const (
	photoKeyPrefix = "student-photos/"
	photoExt       = ".jpg"
	thumbSuffix    = "-thumb.jpg"

	// Thumbnails must never be cached: a re-upload replaces the object
	// under the same key and stale copies would shadow it.
	thumbCacheControl = "no-store, no-cache, must-revalidate, max-age=0"

	thumbGenerateTimeout = 30 * time.Second
)

// PhotoService defines the interface for student photo storage operations
type PhotoService interface {
	UploadTarget(studentOpenEmisID string) (*dto.UploadTargetResponse, error)
	Upload(ctx context.Context, studentOpenEmisID string, data []byte) (string, error)
	Lookup(ctx context.Context, studentOpenEmisID string) (string, error)
}

// photoServiceImpl implements the PhotoService interface
type photoServiceImpl struct {
	storage filestorage.ObjectStorage
}

// NewPhotoService creates a new photo service instance
func NewPhotoService(storage filestorage.ObjectStorage) PhotoService {
	return &photoServiceImpl{
		storage: storage,
	}
}

// PhotoKey returns the canonical object key for a student's portrait.
func PhotoKey(studentOpenEmisID string) string {
	return photoKeyPrefix + studentOpenEmisID + photoExt
}

// ThumbKey returns the object key of the derived 60x60 thumbnail.
func ThumbKey(studentOpenEmisID string) string {
	return photoKeyPrefix + studentOpenEmisID + thumbSuffix
}

// UploadTarget describes where a portrait for the given student will live.
func (s *photoServiceImpl) UploadTarget(studentOpenEmisID string) (*dto.UploadTargetResponse, error) {
	studentOpenEmisID = strings.TrimSpace(studentOpenEmisID)
	if studentOpenEmisID == "" {
		return nil, apperrors.NewValidationError("studentOpenEmisId is required")
	}

	key := PhotoKey(studentOpenEmisID)
	return &dto.UploadTargetResponse{
		URL:    s.storage.PublicURL(key),
		Key:    key,
		Bucket: s.storage.Bucket(),
	}, nil
}

// Upload stores a JPEG portrait under the student's canonical key and kicks
// off thumbnail generation in the background. The caller gets the public URL
// of the full-size photo; a thumbnail failure is logged, never surfaced.
func (s *photoServiceImpl) Upload(ctx context.Context, studentOpenEmisID string, data []byte) (string, error) {
	studentOpenEmisID = strings.TrimSpace(studentOpenEmisID)
	if studentOpenEmisID == "" {
		return "", apperrors.NewValidationError("studentOpenEmisId is required")
	}
	if len(data) == 0 {
		return "", apperrors.NewCustomError(apperrors.ErrEmptyPhoto, "photo body is empty")
	}

	key := PhotoKey(studentOpenEmisID)
	err := s.storage.Put(ctx, key, data, filestorage.PutOptions{
		ContentType: "image/jpeg",
	})
	if err != nil {
		return "", fmt.Errorf("error storing photo: %w", err)
	}

	go s.generateThumbnail(studentOpenEmisID, data)

	return s.storage.PublicURL(key), nil
}

// Lookup returns the public URL of a stored portrait, or ErrPhotoNotFound.
func (s *photoServiceImpl) Lookup(ctx context.Context, studentOpenEmisID string) (string, error) {
	studentOpenEmisID = strings.TrimSpace(studentOpenEmisID)
	if studentOpenEmisID == "" {
		return "", apperrors.NewValidationError("studentOpenEmisId is required")
	}

	key := PhotoKey(studentOpenEmisID)
	exists, err := s.storage.Exists(ctx, key)
	if err != nil {
		return "", fmt.Errorf("error checking photo: %w", err)
	}
	if !exists {
		return "", apperrors.ErrPhotoNotFound
	}
	return s.storage.PublicURL(key), nil
}

// generateThumbnail derives the 60x60 center-cropped thumbnail from the
// uploaded bytes. Runs detached from the request; uses its own deadline.
func (s *photoServiceImpl) generateThumbnail(studentOpenEmisID string, data []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), thumbGenerateTimeout)
	defer cancel()

	thumb, err := thumbnail.FromJPEG(data)
	if err != nil {
		logger.Error().Err(err).Str("student", studentOpenEmisID).Msg("Failed to generate thumbnail")
		return
	}

	key := ThumbKey(studentOpenEmisID)
	err = s.storage.Put(ctx, key, thumb, filestorage.PutOptions{
		ContentType:  "image/jpeg",
		CacheControl: thumbCacheControl,
	})
	if err != nil {
		logger.Error().Err(err).Str("key", key).Msg("Failed to store thumbnail")
		return
	}
	logger.Debug().Str("key", key).Msg("Thumbnail stored")
}
