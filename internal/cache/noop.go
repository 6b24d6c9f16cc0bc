package cache

import (
	"context"

	"video-processor/internal/model"
	"video-processor/internal/port"
)

type NoopCache struct{}

// compile-time check: *NoopCache must satisfy port.Cache
var _ port.Cache = (*NoopCache)(nil)

func NewNoop() *NoopCache { return &NoopCache{} }

func (c *NoopCache) GetVideoRecord(ctx context.Context, id string) (*model.VideoRecord, error) {
	return nil, nil
}

func (c *NoopCache) SetVideoRecord(ctx context.Context, id string, v *model.VideoRecord) error {
	return nil
}

func (c *NoopCache) DeleteVideoRecord(ctx context.Context, id string) error {
	return nil
}
