package video

import (
	"context"
	"errors"
	"testing"

	"video-processor/internal/mock"
	"video-processor/internal/model"
	"video-processor/internal/port"
)

func newPipeline(l *mock.Ledger, c *mock.Cache, s *mock.Storage, t *mock.Transcoder, st *mock.Staging) port.VideoProcessor {
	return NewVideoProcessor(l, c, s, t, st, ConventionDeriver{}, "raw-videos", "processed-videos")
}

func TestProcessVideo_Success(t *testing.T) {
	ledger := &mock.Ledger{}
	cache := &mock.Cache{}
	strg := &mock.Storage{}
	staging := &mock.Staging{}

	// the ledger must already read "processed" by the time the
	// transcoder runs
	trans := &mock.Transcoder{}
	trans.OnTranscode = func() {
		if !ledger.UpdateCalled {
			t.Error("expected ledger update before transcoding")
		}
		if ledger.Updated.Status != model.StatusProcessed {
			t.Errorf("pre-transcode status = %q; want %q", ledger.Updated.Status, model.StatusProcessed)
		}
	}

	svc := newPipeline(ledger, cache, strg, trans, staging)
	out, err := svc.ProcessVideo(context.Background(), port.ProcessVideoInput{ObjectName: "user123-abc.mp4"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.AlreadyProcessed {
		t.Error("expected AlreadyProcessed = false")
	}
	if out.VideoID != "user123-abc" {
		t.Errorf("VideoID = %q; want %q", out.VideoID, "user123-abc")
	}

	if ledger.Created == nil {
		t.Fatal("expected ledger.Create to be called")
	}
	if ledger.Created.ID != "user123-abc" || ledger.Created.OwnerID != "user123" {
		t.Errorf("created record = %+v; want id user123-abc, owner user123", ledger.Created)
	}
	if ledger.Created.Status != model.StatusProcessing {
		t.Errorf("created status = %q; want %q", ledger.Created.Status, model.StatusProcessing)
	}

	if !strg.DownloadCalled || strg.DownloadedObject != "user123-abc.mp4" {
		t.Errorf("download object = %q; want user123-abc.mp4", strg.DownloadedObject)
	}
	if ledger.UpdatedID != "user123-abc" || ledger.Updated.Filename != "processed-user123-abc.mp4" {
		t.Errorf("updated = %q %+v; want user123-abc with processed filename", ledger.UpdatedID, ledger.Updated)
	}
	if !trans.TranscodeCalled {
		t.Error("expected transcoder to be called")
	}
	if !strg.UploadCalled || strg.UploadedObject != "processed-user123-abc.mp4" {
		t.Errorf("uploaded object = %q; want processed-user123-abc.mp4", strg.UploadedObject)
	}
	if strg.UploadedType != "video/mp4" {
		t.Errorf("uploaded content type = %q; want video/mp4", strg.UploadedType)
	}
	if !strg.MakePublicCalled || strg.PublicBucket != "processed-videos" {
		t.Errorf("public bucket = %q; want processed-videos", strg.PublicBucket)
	}
	if len(staging.RemovedRaw) != 1 || staging.RemovedRaw[0] != "user123-abc.mp4" {
		t.Errorf("removed raw = %v; want [user123-abc.mp4]", staging.RemovedRaw)
	}
	if len(staging.RemovedProcessed) != 1 || staging.RemovedProcessed[0] != "processed-user123-abc.mp4" {
		t.Errorf("removed processed = %v; want [processed-user123-abc.mp4]", staging.RemovedProcessed)
	}
	if !cache.SetCalled {
		t.Error("expected record to be cached")
	}
}

func TestProcessVideo_DuplicateNotification(t *testing.T) {
	ledger := &mock.Ledger{CreateErr: ErrAlreadyExists}
	strg := &mock.Storage{}
	trans := &mock.Transcoder{}
	staging := &mock.Staging{}

	svc := newPipeline(ledger, &mock.Cache{}, strg, trans, staging)
	out, err := svc.ProcessVideo(context.Background(), port.ProcessVideoInput{ObjectName: "user123-abc.mp4"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.AlreadyProcessed {
		t.Error("expected AlreadyProcessed = true")
	}
	if strg.DownloadCalled {
		t.Error("expected no download for an already-handled video")
	}
	if trans.TranscodeCalled {
		t.Error("expected no transcode for an already-handled video")
	}
}

func TestProcessVideo_CacheHitShortCircuits(t *testing.T) {
	cache := &mock.Cache{Record: &model.VideoRecord{ID: "user123-abc", Status: model.StatusProcessed}}
	ledger := &mock.Ledger{}

	svc := newPipeline(ledger, cache, &mock.Storage{}, &mock.Transcoder{}, &mock.Staging{})
	out, err := svc.ProcessVideo(context.Background(), port.ProcessVideoInput{ObjectName: "user123-abc.mp4"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.AlreadyProcessed {
		t.Error("expected AlreadyProcessed = true")
	}
	if ledger.CreateCalled {
		t.Error("expected no ledger create on cache hit")
	}
}

func TestProcessVideo_CreateError(t *testing.T) {
	ledger := &mock.Ledger{CreateErr: errors.New("ledger down")}
	strg := &mock.Storage{}

	svc := newPipeline(ledger, &mock.Cache{}, strg, &mock.Transcoder{}, &mock.Staging{})
	if _, err := svc.ProcessVideo(context.Background(), port.ProcessVideoInput{ObjectName: "a.mp4"}); err == nil {
		t.Fatal("expected error")
	}
	if strg.DownloadCalled {
		t.Error("expected no download after create failure")
	}
}

func TestProcessVideo_DownloadFailure(t *testing.T) {
	ledger := &mock.Ledger{}
	strg := &mock.Storage{DownloadErr: errors.New("download fail")}
	trans := &mock.Transcoder{}
	staging := &mock.Staging{}

	svc := newPipeline(ledger, &mock.Cache{}, strg, trans, staging)
	if _, err := svc.ProcessVideo(context.Background(), port.ProcessVideoInput{ObjectName: "user123-abc.mp4"}); err == nil {
		t.Fatal("expected error")
	}
	// partial file is dropped, nothing else ran
	if len(staging.RemovedRaw) != 1 {
		t.Errorf("removed raw = %v; want one entry", staging.RemovedRaw)
	}
	if ledger.UpdateCalled {
		t.Error("expected no ledger update after download failure")
	}
	if trans.TranscodeCalled {
		t.Error("expected no transcode after download failure")
	}
}

func TestProcessVideo_TranscodeFailure(t *testing.T) {
	ledger := &mock.Ledger{}
	strg := &mock.Storage{}
	trans := &mock.Transcoder{TranscodeErr: errors.New("codec blew up")}
	staging := &mock.Staging{}

	svc := newPipeline(ledger, &mock.Cache{}, strg, trans, staging)
	_, err := svc.ProcessVideo(context.Background(), port.ProcessVideoInput{ObjectName: "user123-abc.mp4"})
	if !errors.Is(err, ErrConversionFailed) {
		t.Fatalf("expected ErrConversionFailed, got %v", err)
	}

	// both staging files cleaned up, no upload
	if len(staging.RemovedRaw) != 1 || len(staging.RemovedProcessed) != 1 {
		t.Errorf("cleanup = raw %v, processed %v; want one of each", staging.RemovedRaw, staging.RemovedProcessed)
	}
	if strg.UploadCalled {
		t.Error("expected no upload after transcode failure")
	}
	// the ledger record is NOT rolled back: it still reads "processed"
	if ledger.Updated.Status != model.StatusProcessed {
		t.Errorf("ledger status after failure = %q; want %q", ledger.Updated.Status, model.StatusProcessed)
	}
}

func TestProcessVideo_UploadFailure(t *testing.T) {
	ledger := &mock.Ledger{}
	strg := &mock.Storage{UploadErr: errors.New("upload fail")}

	svc := newPipeline(ledger, &mock.Cache{}, strg, &mock.Transcoder{}, &mock.Staging{})
	_, err := svc.ProcessVideo(context.Background(), port.ProcessVideoInput{ObjectName: "user123-abc.mp4"})
	if err == nil || errors.Is(err, ErrConversionFailed) {
		t.Fatalf("expected a plain upload error, got %v", err)
	}
	if strg.MakePublicCalled {
		t.Error("expected no public-read call after upload failure")
	}
}
