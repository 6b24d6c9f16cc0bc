package storage

import (
	"context"
	"fmt"
	"log"

	"video-processor/internal/port"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioStorage struct {
	client minioClient
	useSSL bool
}

// compile-time check: *MinioStorage must satisfy port.Storage
var _ port.Storage = (*MinioStorage)(nil)

func NewStorage(endpoint, accessKey, secretKey string, useSSL bool) (*MinioStorage, error) {
	log.Println("initialising minio client...")
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, mapMinioErr(err)
	}
	return &MinioStorage{client: client, useSSL: useSSL}, nil
}

func (s *MinioStorage) InitBucket(bucket string) error {
	ok, err := s.client.BucketExists(context.Background(), bucket)
	if err != nil {
		return mapMinioErr(err)
	}
	if !ok {
		log.Printf("bucket %q does not exist, creating it...", bucket)
		if err := s.client.MakeBucket(context.Background(), bucket, minio.MakeBucketOptions{}); err != nil {
			return mapMinioErr(err)
		}
	}
	return nil
}

func (s *MinioStorage) DownloadFile(ctx context.Context, bucket, objectName, filePath string) error {
	log.Printf("downloading object %q from bucket %q to %q...", objectName, bucket, filePath)

	if err := s.client.FGetObject(ctx, bucket, objectName, filePath, minio.GetObjectOptions{}); err != nil {
		return mapMinioErr(err)
	}
	return nil
}

func (s *MinioStorage) UploadFile(ctx context.Context, bucket, objectName, filePath, contentType string) error {
	log.Printf("uploading file %q to bucket %q as %q...", filePath, bucket, objectName)

	opts := minio.PutObjectOptions{}
	if contentType != "" {
		opts.ContentType = contentType
	}
	if _, err := s.client.FPutObject(ctx, bucket, objectName, filePath, opts); err != nil {
		return mapMinioErr(err)
	}
	return nil
}

// MakePublicRead applies an anonymous-download policy to the bucket so
// every object in it is publicly readable. MinIO has no per-object ACL,
// so the policy is bucket-wide and idempotent.
func (s *MinioStorage) MakePublicRead(ctx context.Context, bucket string) error {
	log.Printf("ensuring bucket %q allows anonymous downloads...", bucket)

	policy := fmt.Sprintf(`{
  "Version": "2012-10-17",
  "Statement": [
    {
      "Effect": "Allow",
      "Principal": {"AWS": ["*"]},
      "Action": ["s3:GetObject"],
      "Resource": ["arn:aws:s3:::%s/*"]
    }
  ]
}`, bucket)

	if err := s.client.SetBucketPolicy(ctx, bucket, policy); err != nil {
		return mapMinioErr(err)
	}
	return nil
}
