package api

import (
	"context"
	"encoding/json"
	"net/http"

	"video-processor/internal/logger"
)

// WriteError logs the underlying error and sends a short plain-text body.
// Callers of this service only ever see text responses, never a
// structured error payload. The request context must be passed through
// so log records carry the in-flight object key / video id attributes.
func WriteError(ctx context.Context, w http.ResponseWriter, status int, msg string, err error) {
	if err != nil {
		logger.Errorf(ctx, "❌  %s: %v", msg, err)
	} else {
		logger.Error(ctx, "❌  "+msg)
	}
	RespondText(ctx, w, status, msg)
}

func RespondText(ctx context.Context, w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		logger.Errorf(ctx, "❌  Failed to write response body: %v", err)
	}
}

func RespondJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf(ctx, "❌  Failed to encode JSON response: %v", err)
	}
}
