package port

import (
	"context"

	"video-processor/internal/model"
)

// Ledger defines persistence operations for video records.
type Ledger interface {
	// Create inserts a new record keyed by its ID. It must be atomic:
	// if a record with the same ID already exists, it returns
	// video.ErrAlreadyExists and writes nothing.
	Create(ctx context.Context, video *model.VideoRecord) error
	Update(ctx context.Context, id string, upd model.VideoUpdate) error
	GetByID(ctx context.Context, id string) (*model.VideoRecord, error)
}
