package testutil

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
)

type TestBuckets struct {
	Cleanup func() error
}

// SetupTestBuckets (re)creates the given buckets through the raw admin
// client. Cleanup empties and removes them so the next test starts from
// a blank MinIO.
func SetupTestBuckets(client *minio.Client, buckets ...string) (*TestBuckets, error) {
	ctx := context.Background()

	for _, b := range buckets {
		// drop leftovers from an aborted run, ignore "not found"
		_ = RemoveBucket(client, b)
		if err := client.MakeBucket(ctx, b, minio.MakeBucketOptions{}); err != nil {
			exists, err2 := client.BucketExists(ctx, b)
			if err2 != nil || !exists {
				return nil, fmt.Errorf("could not create bucket %q: %w", b, err)
			}
		}
	}

	cleanup := func() error {
		for _, b := range buckets {
			if err := RemoveBucket(client, b); err != nil {
				return err
			}
		}
		return nil
	}

	return &TestBuckets{Cleanup: cleanup}, nil
}

// RemoveBucket deletes every object in the bucket and then the bucket
// itself. A missing bucket is not an error.
func RemoveBucket(client *minio.Client, bucket string) error {
	ctx := context.Background()

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("check bucket %q: %w", bucket, err)
	}
	if !exists {
		return nil
	}

	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			continue
		}
		_ = client.RemoveObject(ctx, bucket, obj.Key, minio.RemoveObjectOptions{})
	}
	if err := client.RemoveBucket(ctx, bucket); err != nil {
		return fmt.Errorf("could not remove bucket %q: %w", bucket, err)
	}
	return nil
}
