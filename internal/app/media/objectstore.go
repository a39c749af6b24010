package media

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStorage downloads media from an S3-compatible store. Lecture uploads
// land in object storage, so s3://bucket/key is a common source location.
type ObjectStorage struct {
	client *minio.Client
}

// NewObjectStorage connects to the configured S3-compatible endpoint.
func NewObjectStorage(endpoint, accessKey, secretKey string, useSSL bool) (*ObjectStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object storage client: %w", err)
	}
	return &ObjectStorage{client: client}, nil
}

// Download streams bucket/key into destPath, removing the partial file on any
// failure.
func (o *ObjectStorage) Download(ctx context.Context, bucket, key, destPath string) (int64, error) {
	obj, err := o.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return 0, fmt.Errorf("get object %s/%s: %w", bucket, key, err)
	}
	defer obj.Close()

	f, err := os.Create(destPath)
	if err != nil {
		return 0, fmt.Errorf("create staged file: %w", err)
	}

	n, err := io.Copy(f, obj)
	if err != nil {
		f.Close()
		os.Remove(destPath)
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return 0, fmt.Errorf("object %s/%s: %w", bucket, key, ErrSourceNotFound)
		}
		return 0, fmt.Errorf("write staged object %s/%s: %w", bucket, key, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(destPath)
		return 0, fmt.Errorf("close staged file: %w", err)
	}
	return n, nil
}
