package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	gcstorage "cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/stemlab/biobank-backend/internal/platform/logger"
)

type gcsStore struct {
	log    *logger.Logger
	client *gcstorage.Client
	bucket string
}

// NewGCSStore builds a FileStore backed by a GCS bucket. The bucket name
// comes from ATTACHMENT_GCS_BUCKET_NAME; STORAGE_EMULATOR_HOST switches the
// client to a local emulator with anonymous credentials.
func NewGCSStore(ctx context.Context, log *logger.Logger) (FileStore, error) {
	serviceLog := log.With("service", "GCSStore")

	bucketName := os.Getenv("ATTACHMENT_GCS_BUCKET_NAME")
	if bucketName == "" {
		return nil, fmt.Errorf("missing env var ATTACHMENT_GCS_BUCKET_NAME")
	}

	var opts []option.ClientOption
	if host := strings.TrimSpace(os.Getenv("STORAGE_EMULATOR_HOST")); host != "" {
		opts = append(opts, option.WithoutAuthentication())
	}

	client, err := gcstorage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	serviceLog.Info("Attachment storage initialized", "bucket", bucketName)

	return &gcsStore{log: serviceLog, client: client, bucket: bucketName}, nil
}

func (s *gcsStore) Save(ctx context.Context, key string, file io.Reader) error {
	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	if _, err := io.Copy(w, file); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to write object %q: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize object %q: %w", key, err)
	}
	return nil
}

func (s *gcsStore) Delete(ctx context.Context, key string) error {
	err := s.client.Bucket(s.bucket).Object(key).Delete(ctx)
	if err == gcstorage.ErrObjectNotExist {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to delete object %q: %w", key, err)
	}
	return nil
}

func (s *gcsStore) URL(key string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, key)
}
