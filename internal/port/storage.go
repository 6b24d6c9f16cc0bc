package port

import "context"

// Storage defines the object-store operations the pipeline needs.
type Storage interface {
	InitBucket(bucket string) error
	DownloadFile(ctx context.Context, bucket, objectName, filePath string) error
	UploadFile(ctx context.Context, bucket, objectName, filePath, contentType string) error
	// MakePublicRead ensures anonymous clients can GET objects in the
	// given bucket. Idempotent.
	MakePublicRead(ctx context.Context, bucket string) error
}
