package api

import (
	"log/slog"
	"time"

	"github.com/ideaforge/forge-api/internal/forge"
	"github.com/ideaforge/forge-api/internal/render"
)

// StartSessionRequest represents the request body for starting a session.
// SeedIdea may be empty; the service then falls back to the default seed.
type StartSessionRequest struct {
	SeedIdea string `json:"seed_idea" validate:"max=4000"`
}

// ReviseDraftRequest represents the request body for storing the
// human-edited draft prompt.
type ReviseDraftRequest struct {
	Draft string `json:"draft" validate:"required,min=1,max=16000"`
}

// SessionResponse represents the full session state returned by every
// endpoint. The *_html fields carry the model's markdown rendered for
// direct display.
type SessionResponse struct {
	ID               string    `json:"id"`
	SeedIdea         string    `json:"seed_idea"`
	Suggestions      string    `json:"suggestions,omitempty"`
	SuggestionsHTML  string    `json:"suggestions_html,omitempty"`
	DraftPrompt      string    `json:"draft_prompt,omitempty"`
	FinalSummary     string    `json:"final_summary,omitempty"`
	FinalSummaryHTML string    `json:"final_summary_html,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// sessionToResponse converts a forge.Session to its response DTO,
// rendering markdown fields to HTML. A render failure degrades to the
// plain-text field rather than failing the request.
func sessionToResponse(session *forge.Session) SessionResponse {
	resp := SessionResponse{
		ID:           session.ID.String(),
		SeedIdea:     session.SeedIdea,
		Suggestions:  session.Suggestions,
		DraftPrompt:  session.DraftPrompt,
		FinalSummary: session.FinalSummary,
		CreatedAt:    session.CreatedAt,
		UpdatedAt:    session.UpdatedAt,
	}

	resp.SuggestionsHTML = renderOrEmpty(session.Suggestions)
	resp.FinalSummaryHTML = renderOrEmpty(session.FinalSummary)
	return resp
}

func renderOrEmpty(markdown string) string {
	html, err := render.HTML(markdown)
	if err != nil {
		slog.Warn("failed to render markdown for response", "error", err)
		return ""
	}
	return html
}
