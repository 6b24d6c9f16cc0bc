package middleware

import (
	"net/http"

	"video-processor/internal/api_context"
	"video-processor/internal/handler/api"

	"github.com/go-chi/chi/v5"
)

// WithVideoID extracts the {id} route param and stashes it in the request
// context for the handler and the logger.
func WithVideoID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "id")
			if id == "" {
				api.WriteError(r.Context(), w, http.StatusBadRequest, "ID is required", nil)
				return
			}

			ctx := api_context.WithVideoID(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
