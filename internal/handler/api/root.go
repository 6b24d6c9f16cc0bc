package api

import "net/http"

// RootHandler answers the liveness greeting on GET /.
func RootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RespondText(r.Context(), w, http.StatusOK, "Hello World!")
	}
}
