package receipt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-redis/redis/v8"
)

const readyKeyPrefix = "receipt:ready:"

// Store keeps rendered confirmation artifacts on disk and tracks their
// download-ready flag in Redis. Artifacts are regenerable from the booking
// record, so losing the directory is not data loss.
type Store struct {
	dir string
	rdb *redis.Client
}

// NewStore creates the artifact directory if needed.
func NewStore(dir string, rdb *redis.Client) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("receipt: failed to create artifact dir %s: %w", dir, err)
	}
	return &Store{dir: dir, rdb: rdb}, nil
}

// Save writes the artifact and resets its download-ready flag. The artifact
// is viewable immediately; the download flag is released by the delivery
// worker after the fixed delay.
func (s *Store) Save(ctx context.Context, confirmationCode string, data []byte) (string, error) {
	name := ArtifactName(confirmationCode)
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("receipt: failed to write artifact %s: %w", name, err)
	}
	if err := s.rdb.Del(ctx, readyKeyPrefix+confirmationCode).Err(); err != nil {
		return "", fmt.Errorf("receipt: failed to reset ready flag for %s: %w", confirmationCode, err)
	}
	return path, nil
}

// Load reads a previously saved artifact.
func (s *Store) Load(confirmationCode string) ([]byte, error) {
	path := filepath.Join(s.dir, ArtifactName(confirmationCode))
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("receipt: failed to read artifact for %s: %w", confirmationCode, err)
	}
	return data, nil
}

// MarkReady flips the download-ready flag for an artifact.
func (s *Store) MarkReady(ctx context.Context, confirmationCode string) error {
	if err := s.rdb.Set(ctx, readyKeyPrefix+confirmationCode, "1", 0).Err(); err != nil {
		return fmt.Errorf("receipt: failed to mark %s ready: %w", confirmationCode, err)
	}
	return nil
}

// IsReady reports whether the artifact has been offered for download.
func (s *Store) IsReady(ctx context.Context, confirmationCode string) (bool, error) {
	_, err := s.rdb.Get(ctx, readyKeyPrefix+confirmationCode).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("receipt: failed to check ready flag for %s: %w", confirmationCode, err)
	}
	return true, nil
}
