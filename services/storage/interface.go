package storage

import (
	"context"
	"io"
	"time"
)

// ProgressFunc is notified as upload bytes are transferred. It is a hook
// point only; callers must still wait for Upload to return.
type ProgressFunc func(transferred, total int64)

// StorageService defines the interface for object storage operations.
type StorageService interface {
	// Upload stores the reader's content at objectPath and returns the
	// stored object path. progress may be nil.
	Upload(ctx context.Context, r io.Reader, size int64, objectPath, contentType string, progress ProgressFunc) (string, error)
	Delete(ctx context.Context, objectPath string) error
	GetDownloadURL(ctx context.Context, objectPath string) (string, error)
	GetSecureDownloadURL(ctx context.Context, objectPath string, expires time.Duration) (string, error)
}
