// Package middleware holds the container filters and the error payload
// mapping shared by all HTTP features.
package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"

	"github.com/dwood/corpus-search/internal/errs"
)

// ErrorResponse is the error payload shape surfaced to callers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Logger is a container filter that logs one line per request.
func Logger(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	start := time.Now()
	chain.ProcessFilter(req, resp)
	log.Info().
		Str("method", req.Request.Method).
		Str("path", req.Request.URL.Path).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("Request handled")
}

// RecoverPanic converts handler panics into a 500 payload instead of tearing
// down the connection.
func RecoverPanic(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Str("path", req.Request.URL.Path).
				Msg("Handler panicked")
			writeError(resp, http.StatusInternalServerError, "internal server error")
		}
	}()
	chain.ProcessFilter(req, resp)
}

// HandleError maps an error to its HTTP status and {error} payload. The
// typed kinds get their documented statuses; anything unrecognized is an
// internal error and is logged for operator attention rather than masked.
func HandleError(resp *restful.Response, err error) {
	switch {
	case errors.Is(err, errs.ErrEmptyQuery):
		writeError(resp, http.StatusBadRequest, "Invalid or missing input word")
	case errors.Is(err, errs.ErrUnknownWord):
		writeError(resp, http.StatusNotFound, "No matching or similar sentences found.")
	case errors.Is(err, errs.ErrWordNotFound):
		writeError(resp, http.StatusNotFound, "Word not found in the corpus")
	case errors.Is(err, errs.ErrNotReady):
		writeError(resp, http.StatusServiceUnavailable, "Service is still loading, retry shortly")
	case errors.Is(err, errs.ErrPersistence):
		log.Error().Err(err).Msg("Corpus persistence failure")
		writeError(resp, http.StatusInternalServerError, "Corpus storage failure")
	default:
		log.Error().Err(err).Msg("Unhandled internal error")
		writeError(resp, http.StatusInternalServerError, "Internal server error")
	}
}

func writeError(resp *restful.Response, status int, message string) {
	if err := resp.WriteHeaderAndJson(status, ErrorResponse{Error: message}, restful.MIME_JSON); err != nil {
		log.Error().Err(err).Msg("Failed to write error response")
	}
}
