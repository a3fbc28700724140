package util

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// ErrorResponse is the envelope of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, errorMessage string) {
	writeJSON(w, statusCode, ErrorResponse{Error: errorMessage})
	log.Debug().Int("status", statusCode).Str("error", errorMessage).Msg("WriteErrorResponse: sent error response")
}

func WriteSuccessResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	writeJSON(w, statusCode, data)
	log.Debug().Int("status", statusCode).Msg("WriteSuccessResponse: sent response")
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		log.Error().Err(err).Msg("writeJSON: failed to encode response")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal server error"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(append(body, '\n')); err != nil {
		log.Error().Err(err).Msg("writeJSON: failed to write response")
	}
}
