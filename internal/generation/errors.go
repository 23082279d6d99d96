package generation

import "errors"

// Common errors returned by generation clients. Every failed call resolves
// to a Result whose error wraps exactly one of these sentinels, so callers
// can classify failures with errors.Is.
var (
	// ErrMissingCredential is returned when no API credential is configured.
	// The call is rejected before any network request is made.
	ErrMissingCredential = errors.New("no generation API credential configured")

	// ErrTransportExhausted is returned when every attempt failed at the
	// transport level (connection error, timeout, or non-2xx status).
	ErrTransportExhausted = errors.New("generation request failed after all retry attempts")

	// ErrMalformedResponse is returned when the service responds with a
	// success status and valid JSON, but the expected generated text is
	// absent. Not retried.
	ErrMalformedResponse = errors.New("generation response missing expected content")

	// ErrParseError is returned when the response body is not valid JSON.
	// Not retried.
	ErrParseError = errors.New("generation response body could not be parsed")

	// ErrInvalidConfig is returned when a client is constructed with an
	// invalid configuration.
	ErrInvalidConfig = errors.New("invalid generation client configuration")
)
