package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ideaforge/forge-api/internal/api"
	"github.com/ideaforge/forge-api/internal/forge"
	"github.com/ideaforge/forge-api/internal/generation"
)

// scriptedGenerator returns queued results in order.
type scriptedGenerator struct {
	results []generation.Result
}

func (g *scriptedGenerator) Generate(_ context.Context, _, _ string) generation.Result {
	if len(g.results) == 0 {
		return generation.Success("scripted output")
	}
	result := g.results[0]
	g.results = g.results[1:]
	return result
}

// newTestRouter wires a handler over a fresh service and store, mirroring
// the production route layout.
func newTestRouter(t *testing.T, gen generation.Generator) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service, err := forge.NewService(forge.NewStore(), gen, logger)
	require.NoError(t, err)

	handler, err := api.NewForgeHandler(service, logger)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Post("/sessions", handler.StartSession)
		r.Get("/sessions/{id}", handler.GetSession)
		r.Post("/sessions/{id}/suggestions", handler.GenerateSuggestions)
		r.Put("/sessions/{id}/draft", handler.ReviseDraft)
		r.Post("/sessions/{id}/summary", handler.GenerateSummary)
	})
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader = bytes.NewReader(nil)
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeSession(t *testing.T, rec *httptest.ResponseRecorder) api.SessionResponse {
	t.Helper()

	var resp api.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// startSession creates a session through the API and returns its ID.
func startSession(t *testing.T, router http.Handler, seed string) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/sessions", api.StartSessionRequest{SeedIdea: seed})
	require.Equal(t, http.StatusCreated, rec.Code)
	return decodeSession(t, rec).ID
}

// TestStartSession verifies session creation, including the default seed.
func TestStartSession(t *testing.T) {
	router := newTestRouter(t, &scriptedGenerator{})

	rec := doJSON(t, router, http.MethodPost, "/api/sessions",
		api.StartSessionRequest{SeedIdea: "A detective story set in the future."})
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeSession(t, rec)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "A detective story set in the future.", resp.SeedIdea)
	assert.Empty(t, resp.Suggestions)
}

// TestStartSessionDefaultsSeed verifies that an empty seed falls back to
// the pre-filled example.
func TestStartSessionDefaultsSeed(t *testing.T) {
	router := newTestRouter(t, &scriptedGenerator{})

	rec := doJSON(t, router, http.MethodPost, "/api/sessions", api.StartSessionRequest{})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, forge.DefaultSeedIdea, decodeSession(t, rec).SeedIdea)
}

// TestStartSessionInvalidBody verifies malformed JSON is rejected.
func TestStartSessionInvalidBody(t *testing.T) {
	router := newTestRouter(t, &scriptedGenerator{})

	req := httptest.NewRequest(http.MethodPost, "/api/sessions", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestGetSession verifies retrieval and the unknown-ID mapping.
func TestGetSession(t *testing.T) {
	router := newTestRouter(t, &scriptedGenerator{})
	id := startSession(t, router, "seed")

	rec := doJSON(t, router, http.MethodGet, "/api/sessions/"+id, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/sessions/00000000-0000-0000-0000-000000000001", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/sessions/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestGenerateSuggestions verifies phase 1 over the API: suggestions and
// the pre-filled draft come back, with the markdown rendered for the UI.
func TestGenerateSuggestions(t *testing.T) {
	gen := &scriptedGenerator{results: []generation.Result{
		generation.Success("**GENRE VARIANT:** Tech-noir procedural"),
	}}
	router := newTestRouter(t, gen)
	id := startSession(t, router, "A detective story set in the future.")

	rec := doJSON(t, router, http.MethodPost, "/api/sessions/"+id+"/suggestions", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeSession(t, rec)
	assert.Equal(t, "**GENRE VARIANT:** Tech-noir procedural", resp.Suggestions)
	assert.Contains(t, resp.SuggestionsHTML, "<strong>GENRE VARIANT:</strong>")
	assert.Contains(t, resp.DraftPrompt, "Seed Idea: A detective story set in the future.")
	assert.Contains(t, resp.DraftPrompt, "AI Suggestions:\n**GENRE VARIANT:** Tech-noir procedural")
}

// TestFailureStatusMapping verifies that each classified generation
// failure maps to its HTTP status and that the response carries a trace
// ID-bearing error shape, not the raw error.
func TestFailureStatusMapping(t *testing.T) {
	testCases := []struct {
		name       string
		result     generation.Result
		wantStatus int
	}{
		{
			name:       "missing credential",
			result:     generation.Failure(generation.ErrMissingCredential),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "transport exhausted",
			result:     generation.Failure(fmt.Errorf("%w: last error: 503", generation.ErrTransportExhausted)),
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "malformed response",
			result:     generation.Failure(fmt.Errorf("%w: no candidates", generation.ErrMalformedResponse)),
			wantStatus: http.StatusBadGateway,
		},
		{
			name:       "parse error",
			result:     generation.Failure(fmt.Errorf("%w: invalid character", generation.ErrParseError)),
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gen := &scriptedGenerator{results: []generation.Result{tc.result}}
			router := newTestRouter(t, gen)
			id := startSession(t, router, "seed")

			rec := doJSON(t, router, http.MethodPost, "/api/sessions/"+id+"/suggestions", nil)
			assert.Equal(t, tc.wantStatus, rec.Code)

			var errResp map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
			assert.NotEmpty(t, errResp["error"])

			// A failed phase must not mutate the session.
			getRec := doJSON(t, router, http.MethodGet, "/api/sessions/"+id, nil)
			require.Equal(t, http.StatusOK, getRec.Code)
			assert.Empty(t, decodeSession(t, getRec).Suggestions)
		})
	}
}

// TestReviseDraft verifies phase 2 over the API.
func TestReviseDraft(t *testing.T) {
	router := newTestRouter(t, &scriptedGenerator{})
	id := startSession(t, router, "seed")

	rec := doJSON(t, router, http.MethodPut, "/api/sessions/"+id+"/draft",
		api.ReviseDraftRequest{Draft: "My polished prompt."})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "My polished prompt.", decodeSession(t, rec).DraftPrompt)

	// Empty draft fails validation.
	rec = doJSON(t, router, http.MethodPut, "/api/sessions/"+id+"/draft",
		api.ReviseDraftRequest{Draft: ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestGenerateSummary verifies phase 3 over the API, including the
// draft-required guard.
func TestGenerateSummary(t *testing.T) {
	gen := &scriptedGenerator{results: []generation.Result{
		generation.Success("In 2099, a detective uncovers..."),
	}}
	router := newTestRouter(t, gen)
	id := startSession(t, router, "seed")

	// No draft yet: the phase is refused.
	rec := doJSON(t, router, http.MethodPost, "/api/sessions/"+id+"/summary", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	putRec := doJSON(t, router, http.MethodPut, "/api/sessions/"+id+"/draft",
		api.ReviseDraftRequest{Draft: "A polished prompt."})
	require.Equal(t, http.StatusOK, putRec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/sessions/"+id+"/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeSession(t, rec)
	assert.Equal(t, "In 2099, a detective uncovers...", resp.FinalSummary)
	assert.NotEmpty(t, resp.FinalSummaryHTML)
	assert.Equal(t, "A polished prompt.", resp.DraftPrompt, "the draft survives final generation")
}
