package api

import "net/http"

func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RespondText(r.Context(), w, http.StatusNotFound, "This endpoint does not exist")
	}
}
