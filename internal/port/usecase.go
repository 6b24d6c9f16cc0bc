package port

import (
	"context"

	"video-processor/internal/model"
)

// VideoProcessor runs the full processing pipeline for one notification.
type VideoProcessor interface {
	ProcessVideo(ctx context.Context, in ProcessVideoInput) (*ProcessVideoOutput, error)
}
type ProcessVideoInput struct {
	ObjectName string
}
type ProcessVideoOutput struct {
	VideoID string `json:"video_id"`
	// AlreadyProcessed reports that a record for the id existed and the
	// pipeline short-circuited without doing any work.
	AlreadyProcessed bool `json:"already_processed"`
}

// VideoGetter retrieves a video record from the ledger.
type VideoGetter interface {
	GetVideo(ctx context.Context, id string) (*model.VideoRecord, error)
}
