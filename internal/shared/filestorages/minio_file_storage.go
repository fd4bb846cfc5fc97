package filestorages

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const minioCodeNoSuchKey = "NoSuchKey"

// MinioOptions contains the information required to talk to an S3 compatible object store.
type MinioOptions struct {
	Endpoint  string
	Bucket    string
	AccessKey string
	SecretKey string
	Region    string
	UseSSL    bool
}

type minioFileStorage struct {
	client *minio.Client
	bucket string
}

// NewMinioFileStorage connects to the object store and creates the bucket when
// it is missing.
func NewMinioFileStorage(ctx context.Context, opts MinioOptions) (FileStorage, error) {
	if opts.Endpoint == "" || opts.Bucket == "" {
		return nil, fmt.Errorf("%w: minio endpoint and bucket are required", ErrInvalidRootDir)
	}

	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %q: %w", opts.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{Region: opts.Region}); err != nil {
			return nil, fmt.Errorf("create bucket %q: %w", opts.Bucket, err)
		}
	}

	return newMinioFileStorage(client, opts.Bucket), nil
}

func newMinioFileStorage(client *minio.Client, bucket string) *minioFileStorage {
	return &minioFileStorage{client: client, bucket: bucket}
}

// Put without AllowOverwrite checks for the key first. Two writers racing on
// the same key can both pass the check; callers that need strict
// create-if-absent must use the local backend.
func (s *minioFileStorage) Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (*PutResult, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	if !opts.AllowOverwrite {
		_, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
		if err == nil {
			return nil, ErrFileAlreadyExists
		}
		if !isMinioNotFound(err) {
			return nil, fmt.Errorf("stat object %q: %w", key, err)
		}
	}

	// Known length lets the client send a single PUT.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: opts.ContentType,
	})
	if err != nil {
		return nil, fmt.Errorf("put object %q: %w", key, err)
	}
	return &PutResult{FileKey: key}, nil
}

func (s *minioFileStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get object %q: %w", key, err)
	}
	// GetObject is lazy; Stat forces the request so a missing key surfaces here.
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		if isMinioNotFound(err) {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("get object %q: %w", key, err)
	}
	return obj, nil
}

func isMinioNotFound(err error) bool {
	return minio.ToErrorResponse(err).Code == minioCodeNoSuchKey
}
