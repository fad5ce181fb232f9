package mediastore

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/tahsin/scholarfolio/internal/pkg/apperrors"
	"github.com/tahsin/scholarfolio/internal/pkg/logger"
)

// Options configures the MinIO-backed store.
type Options struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	UseSSL        bool
	PublicBaseURL string
}

// MinioStore implements Store on top of a MinIO (or any S3-compatible)
// bucket. Object ids are "<folder>/<uuid><ext>" and double as the key used
// for removal and streaming.
type MinioStore struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// NewMinioStore connects to the object store and ensures the bucket exists.
func NewMinioStore(ctx context.Context, opts Options) (*MinioStore, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %q: %w", opts.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %q: %w", opts.Bucket, err)
		}
		logger.Info().Str("bucket", opts.Bucket).Msg("Created media bucket")
	}

	return &MinioStore{
		client:  client,
		bucket:  opts.Bucket,
		baseURL: strings.TrimRight(opts.PublicBaseURL, "/"),
	}, nil
}

// Upload validates the file against the given rules, then streams it into
// the bucket under a fresh uuid-based object name.
func (s *MinioStore) Upload(ctx context.Context, fileHeader *multipart.FileHeader, folder string, rules Constraints) (Asset, error) {
	if err := checkConstraints(fileHeader, rules); err != nil {
		return Asset{}, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return Asset{}, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	objectName := folder + "/" + uuid.New().String() + strings.ToLower(filepath.Ext(fileHeader.Filename))
	contentType := fileHeader.Header.Get("Content-Type")

	_, err = s.client.PutObject(ctx, s.bucket, objectName, file, fileHeader.Size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return Asset{}, fmt.Errorf("failed to store object %q: %w", objectName, err)
	}

	return Asset{
		URL:      s.baseURL + "/" + s.bucket + "/" + objectName,
		PublicID: objectName,
	}, nil
}

// Remove deletes the object. A missing object is not an error; MinIO treats
// removal of an absent key as a no-op, which fits the best-effort cleanup
// the callers do.
func (s *MinioStore) Remove(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}
	if err := s.client.RemoveObject(ctx, s.bucket, publicID, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove object %q: %w", publicID, err)
	}
	return nil
}

// Fetch opens the object for streaming downloads.
func (s *MinioStore) Fetch(ctx context.Context, publicID string) (io.ReadCloser, int64, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, publicID, minio.GetObjectOptions{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch object %q: %w", publicID, err)
	}

	stat, err := obj.Stat()
	if err != nil {
		obj.Close()
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" {
			return nil, 0, apperrors.ErrResourceNotFound
		}
		return nil, 0, fmt.Errorf("failed to stat object %q: %w", publicID, err)
	}

	return obj, stat.Size, nil
}

func checkConstraints(fileHeader *multipart.FileHeader, rules Constraints) error {
	if rules.MaxSize > 0 && fileHeader.Size > rules.MaxSize {
		return apperrors.NewCustomError(apperrors.ErrFileTooLarge,
			fmt.Sprintf("File size exceeds the %dMB limit", rules.MaxSize/(1024*1024)))
	}

	if len(rules.MIMEPrefixes) == 0 {
		return nil
	}
	contentType := fileHeader.Header.Get("Content-Type")
	for _, prefix := range rules.MIMEPrefixes {
		if strings.HasPrefix(contentType, prefix) || contentType == prefix {
			return nil
		}
	}
	return apperrors.NewMediaRejectedError(rules.RejectMessage)
}
