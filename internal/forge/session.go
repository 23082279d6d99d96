package forge

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common errors returned by the forge package.
var (
	// ErrSessionNotFound is returned when no session exists for the
	// given ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrEmptySeedIdea is returned when a phase requires a seed idea and
	// the session has none.
	ErrEmptySeedIdea = errors.New("seed idea cannot be empty")

	// ErrEmptyDraft is returned when final generation is requested
	// before a draft prompt exists.
	ErrEmptyDraft = errors.New("draft prompt cannot be empty")
)

// Session holds the state of one collaborative prompt-engineering session
// across its three phases. Generation failures never mutate a session:
// Suggestions, DraftPrompt, and FinalSummary only ever hold text from
// successful calls or, in DraftPrompt's case, the user's own edits.
type Session struct {
	ID uuid.UUID

	// SeedIdea is the human's phase-1 input.
	SeedIdea string

	// Suggestions is the model's structured refinement output.
	Suggestions string

	// DraftPrompt is the evolving combined prompt: pre-populated from
	// seed plus suggestions, then edited by the human in phase 2.
	DraftPrompt string

	// FinalSummary is the phase-3 output generated from DraftPrompt.
	FinalSummary string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSession creates a session around the given seed idea.
func NewSession(seedIdea string) (*Session, error) {
	if seedIdea == "" {
		return nil, ErrEmptySeedIdea
	}

	now := nowUTC()
	return &Session{
		ID:        uuid.New(),
		SeedIdea:  seedIdea,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
