package mock

import "context"

// Storage implements the storage port for tests.
type Storage struct {
	// captured inputs
	DownloadedObject string
	DownloadedTo     string
	UploadedObject   string
	UploadedFrom     string
	UploadedType     string
	PublicBucket     string

	// errors
	InitBucketErr error
	DownloadErr   error
	UploadErr     error
	MakePublicErr error

	// call flags
	InitBucketCalled bool
	DownloadCalled   bool
	UploadCalled     bool
	MakePublicCalled bool
}

func (m *Storage) InitBucket(bucket string) error {
	m.InitBucketCalled = true
	return m.InitBucketErr
}

func (m *Storage) DownloadFile(ctx context.Context, bucket, objectName, filePath string) error {
	m.DownloadCalled = true
	m.DownloadedObject = objectName
	m.DownloadedTo = filePath
	return m.DownloadErr
}

func (m *Storage) UploadFile(ctx context.Context, bucket, objectName, filePath, contentType string) error {
	m.UploadCalled = true
	m.UploadedObject = objectName
	m.UploadedFrom = filePath
	m.UploadedType = contentType
	return m.UploadErr
}

func (m *Storage) MakePublicRead(ctx context.Context, bucket string) error {
	m.MakePublicCalled = true
	m.PublicBucket = bucket
	return m.MakePublicErr
}
