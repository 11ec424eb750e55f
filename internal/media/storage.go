// Package media proxies uploads to external object storage.
package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
	storage_go "github.com/supabase-community/storage-go"
	"github.com/supabase-community/supabase-go"
)

// Uploader stores a file and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, data io.Reader) (string, error)
}

// SupabaseStorage uploads into a Supabase Storage bucket. Object names
// are prefixed with a uuid so concurrent uploads of the same filename
// cannot collide.
type SupabaseStorage struct {
	Client  *supabase.Client
	Bucket  string
	Timeout time.Duration
}

func NewSupabaseStorage(client *supabase.Client, bucket string, timeout time.Duration) *SupabaseStorage {
	return &SupabaseStorage{Client: client, Bucket: bucket, Timeout: timeout}
}

// Upload is bounded by the configured timeout. The storage client takes
// no HTTP client of its own, so the deadline is enforced around the call.
func (s *SupabaseStorage) Upload(ctx context.Context, filename, contentType string, data io.Reader) (string, error) {
	object := uuid.NewString() + "-" + path.Base(filename)

	opts := storage_go.FileOptions{}
	if contentType != "" {
		opts.ContentType = &contentType
	}

	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	errc := make(chan error, 1)
	go func() {
		_, err := s.Client.Storage.UploadFile(s.Bucket, object, data, opts)
		errc <- err
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("storage upload: %w", ctx.Err())
	case err := <-errc:
		if err != nil {
			return "", fmt.Errorf("storage upload: %w", err)
		}
	}

	return s.Client.Storage.GetPublicUrl(s.Bucket, object).SignedURL, nil
}
