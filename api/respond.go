package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/bazarche/bazarche-backend/errs"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	// Marshal the data first to check size and handle errors
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	// Check if response is too large (e.g., > 10MB)
	const maxResponseSize = 10 * 1024 * 1024 // 10MB
	if len(jsonData) > maxResponseSize {
		r.logger.Error().
			Int("responseSize", len(jsonData)).
			Int("maxSize", maxResponseSize).
			Msg("response too large")

		truncatedResponse := map[string]interface{}{
			"error":   "Response too large",
			"message": "The requested data exceeds the maximum response size",
		}
		truncatedJSON, err := json.Marshal(truncatedResponse)
		if err != nil {
			r.logger.Error().Err(err).Msg("error marshaling truncated response")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		w.Write(truncatedJSON)
		return
	}

	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	// For unexpected errors, log and return generic internal error
	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		r.WriteJSON(w, map[string]interface{}{
			"error":   "Internal Server Error",
			"message": "An unexpected error occurred",
			"status":  "error",
		})
		return
	}

	// Build response based on error details
	response := map[string]interface{}{
		"error":  apiErr.Error(),
		"status": "error",
	}

	// Add field information if present (for validation errors)
	if apiErr.Field != "" {
		response["field"] = apiErr.Field
	}

	if apiErr.Details != "" {
		response["details"] = apiErr.Details
	}

	// Add full error chain for debugging (especially useful for database errors)
	if apiErr.Cause != nil {
		response["cause"] = apiErr.GetFullError()
	}

	w.WriteHeader(apiErr.StatusCode)
	r.WriteJSON(w, response)
}

// wrapDatabaseError wraps a database error with context information
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}
