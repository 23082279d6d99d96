package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ideaforge/forge-api/internal/api/shared"
	"github.com/ideaforge/forge-api/internal/forge"
)

// ForgeHandler handles the session endpoints for the three interaction
// phases.
type ForgeHandler struct {
	service *forge.Service
	logger  *slog.Logger
}

// NewForgeHandler creates a ForgeHandler.
func NewForgeHandler(service *forge.Service, logger *slog.Logger) (*ForgeHandler, error) {
	if service == nil {
		return nil, errors.New("service cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &ForgeHandler{service: service, logger: logger}, nil
}

// StartSession handles POST /api/sessions requests.
func (h *ForgeHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	session, err := h.service.Start(req.SeedIdea)
	if err != nil {
		status, msg := mapServiceError(err)
		shared.RespondWithErrorAndLog(w, r, status, msg, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, sessionToResponse(session))
}

// GetSession handles GET /api/sessions/{id} requests.
func (h *ForgeHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	session, err := h.service.Get(id)
	if err != nil {
		status, msg := mapServiceError(err)
		shared.RespondWithErrorAndLog(w, r, status, msg, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, sessionToResponse(session))
}

// GenerateSuggestions handles POST /api/sessions/{id}/suggestions
// requests, running phase 1 of the flow. The call blocks while the
// generation client retries, bounded by its timeout and backoff.
func (h *ForgeHandler) GenerateSuggestions(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	session, err := h.service.Suggest(r.Context(), id)
	if err != nil {
		status, msg := mapServiceError(err)
		shared.RespondWithErrorAndLog(w, r, status, msg, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, sessionToResponse(session))
}

// ReviseDraft handles PUT /api/sessions/{id}/draft requests, storing the
// human-edited draft prompt.
func (h *ForgeHandler) ReviseDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req ReviseDraftRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	session, err := h.service.Revise(id, req.Draft)
	if err != nil {
		status, msg := mapServiceError(err)
		shared.RespondWithErrorAndLog(w, r, status, msg, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, sessionToResponse(session))
}

// GenerateSummary handles POST /api/sessions/{id}/summary requests,
// running phase 3 of the flow over the session's draft prompt.
func (h *ForgeHandler) GenerateSummary(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	session, err := h.service.Summarize(r.Context(), id)
	if err != nil {
		status, msg := mapServiceError(err)
		shared.RespondWithErrorAndLog(w, r, status, msg, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, sessionToResponse(session))
}

// sessionID extracts and parses the {id} URL parameter, responding with
// 400 on a malformed ID.
func (h *ForgeHandler) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid session ID")
		return uuid.Nil, false
	}
	return id, true
}
