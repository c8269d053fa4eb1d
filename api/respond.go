package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/jmfierro/portfolio-site-backend/errs"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

// WriteData writes a success envelope carrying data.
func (r Responder) WriteData(w http.ResponseWriter, status int, data any) {
	r.writeEnvelope(w, status, envelope{Success: true, Data: data})
}

// WriteMessage writes a success envelope carrying only a message.
func (r Responder) WriteMessage(w http.ResponseWriter, status int, message string) {
	r.writeEnvelope(w, status, envelope{Success: true, Message: message})
}

// WriteError translates a domain error to its HTTP status and a failure
// envelope. Unexpected errors are logged and collapsed to a generic 500 so
// internal detail never leaks to the caller.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		r.logger.Error().Err(err).Msg("unexpected error")
		r.writeEnvelope(w, http.StatusInternalServerError, envelope{
			Success: false,
			Message: "an unexpected error occurred",
		})
		return
	}

	if apiErr.StatusCode >= http.StatusInternalServerError {
		r.logger.Error().Str("details", apiErr.GetFullError()).Msg("internal error")
		r.writeEnvelope(w, apiErr.StatusCode, envelope{
			Success: false,
			Message: "an unexpected error occurred",
		})
		return
	}

	r.writeEnvelope(w, apiErr.StatusCode, envelope{
		Success: false,
		Message: apiErr.Error(),
	})
}

func (r Responder) writeEnvelope(w http.ResponseWriter, status int, body envelope) {
	// Marshal first so a serialization failure never produces a half-written body
	jsonData, err := json.Marshal(body)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// wrapDatabaseError wraps a database error with context information
func wrapDatabaseError(operation, entity string, cause error) error {
	var apiErr *errs.ApiErr
	if errors.As(cause, &apiErr) {
		return apiErr
	}
	return errs.NewDatabaseError(operation, entity, cause)
}
