package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/johnquangdev/meeting-notes/pkg/config"
)

// MinIOClient stores exports in an S3-compatible bucket
type MinIOClient struct {
	client *minio.Client
	bucket string

	// serialises the stat-then-put name reservation within this process
	mu sync.Mutex
}

var _ ExportStore = (*MinIOClient)(nil)

// NewMinIOClient creates a new MinIO client and makes sure the bucket exists
func NewMinIOClient(ctx context.Context, cfg *config.StorageConfig) (*MinIOClient, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	client := &MinIOClient{
		client: minioClient,
		bucket: cfg.BucketName,
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = time.Second
	bo.MaxElapsedTime = 20 * time.Second
	if err := backoff.Retry(func() error {
		return client.ensureBucket(ctx)
	}, backoff.WithContext(bo, ctx)); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return client, nil
}

// ensureBucket creates the bucket if it doesn't exist. Exports stay private
// and are streamed through the API.
func (m *MinIOClient) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		err = m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

// Save uploads an export under the first free name
func (m *MinIOClient) Save(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for n := 0; n < maxCollisionSuffix; n++ {
		candidate := CandidateName(name, n)
		exists, err := m.exists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if exists {
			continue
		}

		_, err = m.client.PutObject(ctx, m.bucket, candidate, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType: contentType,
		})
		if err != nil {
			return "", fmt.Errorf("failed to upload file: %w", err)
		}
		return candidate, nil
	}
	return "", fmt.Errorf("no free export name for %q", name)
}

// Open streams a stored export
func (m *MinIOClient) Open(ctx context.Context, name string) (io.ReadCloser, ObjectInfo, error) {
	if err := ValidateName(name); err != nil {
		return nil, ObjectInfo{}, err
	}

	obj, err := m.client.GetObject(ctx, m.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, ObjectInfo{}, fmt.Errorf("failed to get object: %w", err)
	}

	st, err := obj.Stat()
	if err != nil {
		obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ObjectInfo{}, ErrNotFound
		}
		return nil, ObjectInfo{}, fmt.Errorf("failed to stat object: %w", err)
	}

	return obj, ObjectInfo{
		Name:        name,
		Size:        st.Size,
		ContentType: st.ContentType,
		ModTime:     st.LastModified,
	}, nil
}

func (m *MinIOClient) exists(ctx context.Context, name string) (bool, error) {
	_, err := m.client.StatObject(ctx, m.bucket, name, minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat object: %w", err)
}
