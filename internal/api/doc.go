// Package api contains the HTTP handlers for the collaborative
// prompt-engineering flow. Handlers decode and validate requests, call
// the forge service, map classified generation failures to HTTP status
// codes with sanitized messages, and shape session state into response
// DTOs for the single-page UI.
package api
