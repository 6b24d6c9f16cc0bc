package mock

import (
	"context"

	"video-processor/internal/model"
)

// Cache implements the cache port for tests.
type Cache struct {
	// stored values
	Record *model.VideoRecord

	// errors
	GetErr error
	SetErr error
	DelErr error

	// call flags
	GetCalled bool
	SetCalled bool
	DelCalled bool
}

func (m *Cache) GetVideoRecord(ctx context.Context, id string) (*model.VideoRecord, error) {
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.Record, nil
}

func (m *Cache) SetVideoRecord(ctx context.Context, id string, v *model.VideoRecord) error {
	m.SetCalled = true
	if m.SetErr == nil {
		m.Record = v
	}
	return m.SetErr
}

func (m *Cache) DeleteVideoRecord(ctx context.Context, id string) error {
	m.DelCalled = true
	if m.DelErr == nil {
		m.Record = nil
	}
	return m.DelErr
}
