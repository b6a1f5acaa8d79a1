package kv

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	goCache "github.com/patrickmn/go-cache"

	ierr "github.com/carryint/carryint/internal/errors"
	"github.com/carryint/carryint/internal/logger"
)

// BlobStore implements Store with an in-memory cache tier backed by an
// optional JSON-file tier. With an empty data directory it is purely in
// memory, which is what the tests and the seed command use.
type BlobStore struct {
	cache   *goCache.Cache
	dataDir string
	logger  *logger.Logger
}

// NewBlobStore creates a blob store. dataDir may be empty for a purely
// in-memory store; otherwise blobs persist as <dataDir>/<key>.json.
func NewBlobStore(dataDir string, logger *logger.Logger) (*BlobStore, error) {
	if dataDir != "" {
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, ierr.WithError(err).
				WithHintf("Failed to create data directory %s", dataDir).
				Mark(ierr.ErrStore)
		}
	}
	return &BlobStore{
		cache:   goCache.New(goCache.NoExpiration, goCache.NoExpiration),
		dataDir: dataDir,
		logger:  logger,
	}, nil
}

func (s *BlobStore) Get(ctx context.Context, key string, value any) error {
	if raw, found := s.cache.Get(key); found {
		return json.Unmarshal(raw.([]byte), value)
	}

	if s.dataDir == "" {
		return ierr.NewError("key not found").
			WithHintf("No blob stored under key %s", key).
			Mark(ierr.ErrNotFound)
	}

	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return ierr.NewError("key not found").
				WithHintf("No blob stored under key %s", key).
				Mark(ierr.ErrNotFound)
		}
		return ierr.WithError(err).
			WithHintf("Failed to read blob %s", key).
			Mark(ierr.ErrStore)
	}

	s.cache.Set(key, raw, goCache.NoExpiration)
	return json.Unmarshal(raw, value)
}

func (s *BlobStore) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return ierr.WithError(err).
			WithHintf("Failed to encode blob %s", key).
			Mark(ierr.ErrStore)
	}

	if s.dataDir != "" {
		// write-then-rename so a crash never leaves a half-written blob
		tmp := s.path(key) + ".tmp"
		if err := os.WriteFile(tmp, raw, 0o644); err != nil {
			return ierr.WithError(err).
				WithHintf("Failed to write blob %s", key).
				Mark(ierr.ErrStore)
		}
		if err := os.Rename(tmp, s.path(key)); err != nil {
			return ierr.WithError(err).
				WithHintf("Failed to write blob %s", key).
				Mark(ierr.ErrStore)
		}
	}

	s.cache.Set(key, raw, goCache.NoExpiration)
	return nil
}

func (s *BlobStore) Delete(ctx context.Context, key string) error {
	s.cache.Delete(key)
	if s.dataDir == "" {
		return nil
	}
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return ierr.WithError(err).
			WithHintf("Failed to delete blob %s", key).
			Mark(ierr.ErrStore)
	}
	return nil
}

func (s *BlobStore) path(key string) string {
	return filepath.Join(s.dataDir, key+".json")
}
