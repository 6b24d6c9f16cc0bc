package video

import (
	"context"
	"log"

	"video-processor/internal/model"
	"video-processor/internal/port"
)

type getVideoSrv struct {
	ledger port.Ledger
	cache  port.Cache
}

// compile-time check
var _ port.VideoGetter = (*getVideoSrv)(nil)

// NewVideoGetter constructs a read-through lookup of a video record.
func NewVideoGetter(ledger port.Ledger, cache port.Cache) port.VideoGetter {
	return &getVideoSrv{ledger: ledger, cache: cache}
}

func (s *getVideoSrv) GetVideo(ctx context.Context, id string) (*model.VideoRecord, error) {
	if cached, err := s.cache.GetVideoRecord(ctx, id); err == nil && cached != nil {
		return cached, nil
	} else if err != nil {
		log.Printf("cache lookup failed for video #%s: %v", id, err)
	}

	record, err := s.ledger.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetVideoRecord(ctx, id, record); err != nil {
		log.Printf("failed caching record for video #%s: %v", id, err)
	}
	return record, nil
}
