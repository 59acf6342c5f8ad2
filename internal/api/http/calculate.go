package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/mind-engage/sensory-profile/internal/scoring"
)

const maxBodyBytes = 1 << 20

var (
	errBodyNotObject   = errors.New("request body must be a JSON object")
	errScoresNotObject = errors.New("scores must be an object")
)

// CalculateHandler serves POST /calculate.
func CalculateHandler(agg *scoring.Aggregator, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := log.With("request_id", middleware.GetReqID(r.Context()))

		scores, err := decodeScores(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err == nil {
			var totals scoring.Totals
			if totals, err = agg.Compute(scores); err == nil {
				respondJSON(w, http.StatusOK, totals)
				return
			}
		}

		if errors.Is(err, scoring.ErrInvalidInput) {
			respondError(w, http.StatusBadRequest, "No scores provided", "")
			return
		}
		log.Warn("calculation failed", "error", err)
		respondError(w, http.StatusInternalServerError, calcFailedMsg, err.Error())
	}
}

// decodeScores reads {"scores": {...}}. A missing, null or otherwise empty
// ("", 0, false, [], {}) scores value yields scoring.ErrInvalidInput. The
// "scores" key is matched exactly; a top-level null body is not an object.
func decodeScores(body io.Reader) (scoring.Scores, error) {
	var req map[string]json.RawMessage
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}
	if req == nil {
		return nil, errBodyNotObject
	}
	field := req["scores"]

	dec := json.NewDecoder(bytes.NewReader(field))
	dec.UseNumber()
	var raw any
	if len(field) > 0 {
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode scores: %w", err)
		}
	}

	switch v := raw.(type) {
	case map[string]any:
		return scoring.Scores(v), nil
	case nil:
		return nil, scoring.ErrInvalidInput
	case []any:
		if len(v) == 0 {
			return nil, scoring.ErrInvalidInput
		}
	case string:
		if v == "" {
			return nil, scoring.ErrInvalidInput
		}
	case bool:
		if !v {
			return nil, scoring.ErrInvalidInput
		}
	case json.Number:
		if f, err := v.Float64(); err == nil && f == 0 {
			return nil, scoring.ErrInvalidInput
		}
	}
	return nil, errScoresNotObject
}
