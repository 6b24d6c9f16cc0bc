package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"video-processor/internal/api_context"
	"video-processor/internal/event"
	"video-processor/internal/logger"
	"video-processor/internal/metrics"
	"video-processor/internal/port"
	"video-processor/internal/usecase/video"
	"video-processor/internal/validation"
)

// ProcessVideoHandler handles the push notification for a newly uploaded
// raw video and drives the whole pipeline synchronously. Response bodies
// are the short text strings the notification bus expects.
func ProcessVideoHandler(svc port.VideoProcessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		var env event.PushEnvelope
		if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
			metrics.RecordRejected()
			WriteError(r.Context(), w, http.StatusBadRequest, "Bad Request: missing file name", err)
			return
		}
		if err := validation.ValidateStruct(env); err != nil {
			metrics.RecordRejected()
			WriteError(r.Context(), w, http.StatusBadRequest, "Bad Request: missing file name", err)
			return
		}
		evt, err := env.DecodePayload()
		if err != nil {
			metrics.RecordRejected()
			WriteError(r.Context(), w, http.StatusBadRequest, "Bad Request: missing file name", err)
			return
		}

		ctx := api_context.WithObjectKey(r.Context(), evt.Name)

		out, err := svc.ProcessVideo(ctx, port.ProcessVideoInput{ObjectName: evt.Name})
		if err != nil {
			if errors.Is(err, video.ErrConversionFailed) {
				metrics.RecordFailure("transcode")
				WriteError(ctx, w, http.StatusInternalServerError, "Internal Server Error: video conversion failed", err)
				return
			}
			metrics.RecordFailure("pipeline")
			WriteError(ctx, w, http.StatusInternalServerError, "Internal Server Error: video processing failed", err)
			return
		}

		if out.AlreadyProcessed {
			metrics.RecordDuplicate()
		} else {
			metrics.RecordSuccess(time.Since(start))
			logger.Infof(ctx, "✅  Successfully processed video #%s", out.VideoID)
		}
		RespondText(ctx, w, http.StatusOK, "Video processing complete")
	}
}
