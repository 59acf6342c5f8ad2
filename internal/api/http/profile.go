package http

import (
	"net/http"

	"github.com/mind-engage/sensory-profile/internal/scoring"
)

const indexText = "Sensory Profile Calculator Backend is running."

// IndexHandler serves the liveness text on GET /.
func IndexHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(indexText))
}

// ProfileHandler lists the questionnaire tables and reference maxima.
func ProfileHandler() http.HandlerFunc {
	p := scoring.Describe()
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, p)
	}
}
