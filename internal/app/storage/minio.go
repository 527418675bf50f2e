package storage

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Alyxx-The-Sniper/newsly-ai-reporter/internal/config"
)

const (
	skipNoBucket      = "storage bucket not configured - skipping upload"
	skipNoCredentials = "storage credentials not found - skipping upload"
)

// MinioObjectStore implements ObjectStore against MinIO or any S3-compatible
// endpoint.
type MinioObjectStore struct {
	client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
	creds    bool
}

// NewMinioObjectStore builds the store from settings. The client is
// constructed eagerly, but bucket and credential absence are only surfaced
// per-upload as Skipped results so the service can run without storage.
func NewMinioObjectStore(cfg *config.Settings) (*MinioObjectStore, error) {
	client, err := minio.New(cfg.StorageEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.StorageAccessKey, cfg.StorageSecretKey, ""),
		Secure: cfg.StorageUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	return &MinioObjectStore{
		client:   client,
		bucket:   cfg.StorageBucket,
		endpoint: cfg.StorageEndpoint,
		useSSL:   cfg.StorageUseSSL,
		creds:    cfg.StorageAccessKey != "" && cfg.StorageSecretKey != "",
	}, nil
}

// Upload puts the local file under key. It never returns an error; see
// UploadResult.
func (s *MinioObjectStore) Upload(ctx context.Context, localPath, key string) UploadResult {
	if s.bucket == "" {
		return Skipped(skipNoBucket)
	}
	if !s.creds {
		return Skipped(skipNoCredentials)
	}

	_, err := s.client.FPutObject(ctx, s.bucket, key, localPath, minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
	})
	if err != nil {
		return Failed(fmt.Sprintf("object storage error: %v", err))
	}

	return Uploaded(s.objectURL(key))
}

func (s *MinioObjectStore) objectURL(key string) string {
	protocol := "http"
	if s.useSSL {
		protocol = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", protocol, s.endpoint, s.bucket, key)
}
