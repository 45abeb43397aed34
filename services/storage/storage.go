package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"tourvia/config"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// FirebaseStorageService implements StorageService using Firebase Storage.
type FirebaseStorageService struct {
	client         *storage.Client
	bucketName     string
	serviceAccount *config.ServiceAccount
}

// NewFirebaseStorageService creates a new FirebaseStorageService.
func NewFirebaseStorageService(serviceAccountJSONPath, bucketName string) (*FirebaseStorageService, error) {
	ctx := context.Background()
	client, err := storage.NewClient(ctx, option.WithCredentialsFile(serviceAccountJSONPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	// Load service account for signing URLs
	sa, err := config.LoadServiceAccount(serviceAccountJSONPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load service account for signing URLs: %w", err)
	}

	return &FirebaseStorageService{
		client:         client,
		bucketName:     bucketName,
		serviceAccount: sa,
	}, nil
}

// Upload streams the reader's content to the bucket. Progress notifications
// fire as bytes are copied; the returned path is only valid once Upload
// returns without error.
func (s *FirebaseStorageService) Upload(ctx context.Context, r io.Reader, size int64, objectPath, contentType string, progress ProgressFunc) (string, error) {
	obj := s.client.Bucket(s.bucketName).Object(objectPath)
	w := obj.NewWriter(ctx)

	// Receipt images are publicly readable; the URL is embedded in bookings.
	w.ACL = []storage.ACLRule{{Entity: storage.AllUsers, Role: storage.RoleReader}}
	if contentType != "" {
		w.ObjectAttrs.ContentType = contentType
	}

	src := r
	if progress != nil {
		src = &progressReader{r: r, total: size, notify: progress}
	}

	if _, err := io.Copy(w, src); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to copy file to storage: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to close writer: %w", err)
	}
	return objectPath, nil
}

// Delete deletes an object from the bucket.
func (s *FirebaseStorageService) Delete(ctx context.Context, objectPath string) error {
	obj := s.client.Bucket(s.bucketName).Object(objectPath)
	if err := obj.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// GetDownloadURL returns a public URL assuming the file is publicly accessible.
func (s *FirebaseStorageService) GetDownloadURL(ctx context.Context, objectPath string) (string, error) {
	u := fmt.Sprintf("https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media",
		s.bucketName, url.QueryEscape(objectPath))
	return u, nil
}

// GetSecureDownloadURL returns a signed URL valid for the specified duration.
func (s *FirebaseStorageService) GetSecureDownloadURL(ctx context.Context, objectPath string, expires time.Duration) (string, error) {
	u, err := storage.SignedURL(s.bucketName, objectPath, &storage.SignedURLOptions{
		GoogleAccessID: s.serviceAccount.ClientEmail,
		PrivateKey:     []byte(strings.ReplaceAll(s.serviceAccount.PrivateKey, `\n`, "\n")),
		Method:         "GET",
		Expires:        time.Now().Add(expires),
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate signed URL: %w", err)
	}
	return u, nil
}

// ReceiptObjectPath builds the storage location for an uploaded payment
// receipt, keyed by user, capture time and original filename.
func ReceiptObjectPath(userID string, at time.Time, filename string) string {
	return path.Join("receipts", userID, fmt.Sprintf("%d_%s", at.UnixMilli(), sanitizeFilename(filename)))
}

// sanitizeFilename keeps the base name and replaces path-hostile characters.
func sanitizeFilename(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, base)
}

// progressReader invokes the notify callback as bytes flow through.
type progressReader struct {
	r           io.Reader
	total       int64
	transferred int64
	notify      ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.transferred += int64(n)
		p.notify(p.transferred, p.total)
	}
	return n, err
}
