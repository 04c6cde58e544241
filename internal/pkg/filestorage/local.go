package filestorage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schoollink/schoollink-api/internal/pkg/logger"
)

// LocalStorage stores objects as files under a base directory. Keys map
// directly to relative paths, so the deterministic photo keys stay readable
// on disk.
type LocalStorage struct {
	basePath string
	baseURL  string
}

// NewLocalStorage creates a new LocalStorage instance. basePath is the root
// directory on the server; baseURL is prepended to keys when building public
// URLs and should match the static file route.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	logger.Info().Str("path", basePath).Msg("Local storage directory ensured")

	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}, nil
}

func (ls *LocalStorage) objectPath(key string) string {
	return filepath.Join(ls.basePath, filepath.FromSlash(key))
}

// Put writes the object to disk, creating intermediate directories as needed.
func (ls *LocalStorage) Put(ctx context.Context, key string, data []byte, opts PutOptions) error {
	dstPath := ls.objectPath(key)
	if err := os.MkdirAll(filepath.Dir(dstPath), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create object directory: %w", err)
	}

	if err := os.WriteFile(dstPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write object %s: %w", key, err)
	}

	logger.Info().Str("key", key).Int("bytes", len(data)).Msg("Object stored locally")
	return nil
}

// Get reads the object back in full.
func (ls *LocalStorage) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(ls.objectPath(key))
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", key, err)
	}
	return data, nil
}

// Exists reports whether the object file is present.
func (ls *LocalStorage) Exists(ctx context.Context, key string) (bool, error) {
	_, err := os.Stat(ls.objectPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat object %s: %w", key, err)
	}
	return true, nil
}

// PublicURL returns the static-file URL for the key.
func (ls *LocalStorage) PublicURL(key string) string {
	if ls.baseURL == "" {
		return "/" + key
	}
	return ls.baseURL + "/" + key
}

// Bucket returns the local root directory standing in for a bucket name.
func (ls *LocalStorage) Bucket() string {
	return ls.basePath
}
