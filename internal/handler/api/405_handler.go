package api

import "net/http"

func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RespondText(r.Context(), w, http.StatusMethodNotAllowed, "This method is not allowed")
	}
}
