package api

import (
	"errors"
	"net/http"

	"video-processor/internal/api_context"
	"video-processor/internal/logger"
	"video-processor/internal/port"
	"video-processor/internal/usecase/video"
)

// GetVideoHandler returns the ledger record for a video id.
func GetVideoHandler(svc port.VideoGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.VideoIDFromContext(r.Context())
		if !ok {
			WriteError(r.Context(), w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		record, err := svc.GetVideo(r.Context(), id)
		if err != nil {
			if errors.Is(err, video.ErrVideoNotFound) {
				WriteError(r.Context(), w, http.StatusNotFound, "Video not found", nil)
				return
			}
			WriteError(r.Context(), w, http.StatusInternalServerError, "Could not get video details", err)
			return
		}

		RespondJSON(r.Context(), w, http.StatusOK, record)
		logger.Infof(r.Context(), "✅  Successfully returned details for video #%s", id)
	}
}
