package api

import (
	"errors"
	"net/http"

	"github.com/ideaforge/forge-api/internal/forge"
	"github.com/ideaforge/forge-api/internal/generation"
)

// User-facing messages for classified generation failures. The raw error
// text stays in the logs.
const (
	msgMissingCredential = "No API credential is configured. Set the Gemini API key and try again."
	msgTransportFailed   = "The AI service could not be reached after multiple retries. Please try again."
	msgMalformedResponse = "The AI response was empty or malformed."
	msgParseError        = "The AI response could not be decoded."
	msgInternal          = "An internal error occurred."
)

// mapServiceError translates forge and generation errors into an HTTP
// status code and a sanitized user message.
func mapServiceError(err error) (int, string) {
	switch {
	case errors.Is(err, forge.ErrSessionNotFound):
		return http.StatusNotFound, "Session not found."
	case errors.Is(err, forge.ErrEmptySeedIdea):
		return http.StatusBadRequest, "Please enter a seed idea first."
	case errors.Is(err, forge.ErrEmptyDraft):
		return http.StatusBadRequest, "Please finalize the prompt before executing generation."
	case errors.Is(err, generation.ErrMissingCredential):
		return http.StatusServiceUnavailable, msgMissingCredential
	case errors.Is(err, generation.ErrTransportExhausted):
		return http.StatusBadGateway, msgTransportFailed
	case errors.Is(err, generation.ErrMalformedResponse):
		return http.StatusBadGateway, msgMalformedResponse
	case errors.Is(err, generation.ErrParseError):
		return http.StatusBadGateway, msgParseError
	default:
		return http.StatusInternalServerError, msgInternal
	}
}
