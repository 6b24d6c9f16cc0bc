package video

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime"
	"path/filepath"
	"sync"

	"video-processor/internal/logger"
	"video-processor/internal/model"
	"video-processor/internal/port"
)

const processedPrefix = "processed-"

type processVideoSrv struct {
	ledger  port.Ledger
	cache   port.Cache
	strg    port.Storage
	trans   port.Transcoder
	staging port.Staging
	ids     IDDeriver

	rawBucket       string
	processedBucket string
}

// compile-time check
var _ port.VideoProcessor = (*processVideoSrv)(nil)

// NewVideoProcessor constructs the processing pipeline for one
// notification: idempotency gate, download, transcode, upload, cleanup.
func NewVideoProcessor(
	ledger port.Ledger,
	cache port.Cache,
	strg port.Storage,
	trans port.Transcoder,
	staging port.Staging,
	ids IDDeriver,
	rawBucket, processedBucket string,
) port.VideoProcessor {
	return &processVideoSrv{
		ledger:          ledger,
		cache:           cache,
		strg:            strg,
		trans:           trans,
		staging:         staging,
		ids:             ids,
		rawBucket:       rawBucket,
		processedBucket: processedBucket,
	}
}

// ProcessVideo runs the stages strictly in order. The ledger record is the
// idempotency gate: the first notification for an id wins the atomic
// create, every later one short-circuits as already handled. Note the
// record is set to "processed" right after the download, before the
// transcoder has run, and is not rolled back on transcode failure; the
// upstream ledger consumer depends on that sequence.
func (s *processVideoSrv) ProcessVideo(ctx context.Context, in port.ProcessVideoInput) (*port.ProcessVideoOutput, error) {
	videoID := s.ids.VideoID(in.ObjectName)
	ownerID := s.ids.OwnerID(videoID)
	processedName := processedPrefix + in.ObjectName

	if cached, err := s.cache.GetVideoRecord(ctx, videoID); err == nil && cached != nil {
		logger.Infof(ctx, "video %q has already been processed", in.ObjectName)
		return &port.ProcessVideoOutput{VideoID: videoID, AlreadyProcessed: true}, nil
	}

	record := &model.VideoRecord{
		ID:      videoID,
		OwnerID: ownerID,
		Status:  model.StatusProcessing,
	}
	if err := s.ledger.Create(ctx, record); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			logger.Infof(ctx, "video %q has already been processed", in.ObjectName)
			return &port.ProcessVideoOutput{VideoID: videoID, AlreadyProcessed: true}, nil
		}
		return nil, fmt.Errorf("create ledger record: %w", err)
	}
	s.cacheRecord(ctx, record)

	rawPath := s.staging.RawPath(in.ObjectName)
	if err := s.strg.DownloadFile(ctx, s.rawBucket, in.ObjectName, rawPath); err != nil {
		// drop whatever partial file the failed download left behind
		if rmErr := s.staging.RemoveRaw(ctx, in.ObjectName); rmErr != nil {
			log.Printf("failed to clean up raw video %q: %v", in.ObjectName, rmErr)
		}
		return nil, fmt.Errorf("download raw video %q: %w", in.ObjectName, err)
	}

	upd := model.VideoUpdate{Status: model.StatusProcessed, Filename: processedName}
	if err := s.ledger.Update(ctx, videoID, upd); err != nil {
		return nil, fmt.Errorf("update ledger record: %w", err)
	}
	record.Status = upd.Status
	record.Filename = upd.Filename
	s.cacheRecord(ctx, record)

	processedPath := s.staging.ProcessedPath(processedName)
	if err := s.trans.Transcode(ctx, rawPath, processedPath); err != nil {
		s.cleanup(ctx, in.ObjectName, processedName)
		return nil, fmt.Errorf("%w: %v", ErrConversionFailed, err)
	}

	if err := s.strg.UploadFile(ctx, s.processedBucket, processedName, processedPath, contentTypeFor(processedName)); err != nil {
		return nil, fmt.Errorf("upload processed video %q: %w", processedName, err)
	}
	if err := s.strg.MakePublicRead(ctx, s.processedBucket); err != nil {
		return nil, fmt.Errorf("make processed video %q public: %w", processedName, err)
	}

	s.cleanup(ctx, in.ObjectName, processedName)

	return &port.ProcessVideoOutput{VideoID: videoID}, nil
}

// cleanup deletes both staging files concurrently. Failures are logged
// and never change the pipeline's outcome.
func (s *processVideoSrv) cleanup(ctx context.Context, rawName, processedName string) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := s.staging.RemoveRaw(ctx, rawName); err != nil {
			log.Printf("failed to clean up raw video %q: %v", rawName, err)
		}
	}()
	go func() {
		defer wg.Done()
		if err := s.staging.RemoveProcessed(ctx, processedName); err != nil {
			log.Printf("failed to clean up processed video %q: %v", processedName, err)
		}
	}()
	wg.Wait()
}

func (s *processVideoSrv) cacheRecord(ctx context.Context, record *model.VideoRecord) {
	if err := s.cache.SetVideoRecord(ctx, record.ID, record); err != nil {
		log.Printf("failed caching record for video #%s: %v", record.ID, err)
	}
}

func contentTypeFor(name string) string {
	return mime.TypeByExtension(filepath.Ext(name))
}
