package port

import (
	"context"

	"video-processor/internal/model"
)

// Cache provides caching capabilities for video record lookups.
type Cache interface {
	GetVideoRecord(ctx context.Context, id string) (*model.VideoRecord, error)
	SetVideoRecord(ctx context.Context, id string, video *model.VideoRecord) error
	DeleteVideoRecord(ctx context.Context, id string) error
}
