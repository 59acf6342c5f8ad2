package http

import (
	"encoding/json"
	"net/http"
)

const calcFailedMsg = "An error occurred during calculation."

type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func respondError(w http.ResponseWriter, status int, msg, details string) {
	respondJSON(w, status, errorBody{Error: msg, Details: details})
}
