package forge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ideaforge/forge-api/internal/generation"
)

// Service orchestrates the three interaction phases over the session
// store and the generation backend.
type Service struct {
	store     *Store
	generator generation.Generator
	logger    *slog.Logger
}

// NewService creates a Service with the given dependencies.
func NewService(store *Store, generator generation.Generator, logger *slog.Logger) (*Service, error) {
	if store == nil {
		return nil, errors.New("store cannot be nil")
	}
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Service{
		store:     store,
		generator: generator,
		logger:    logger,
	}, nil
}

// Start creates and stores a new session around the seed idea. An empty
// seed falls back to the default so the UI opens with a working example,
// matching the pre-filled input field.
func (s *Service) Start(seedIdea string) (*Session, error) {
	if seedIdea == "" {
		seedIdea = DefaultSeedIdea
	}

	session, err := NewSession(seedIdea)
	if err != nil {
		return nil, err
	}

	s.store.Save(session)
	s.logger.Info("session started",
		"session_id", session.ID,
		"seed_length", len(seedIdea))

	return session, nil
}

// Get returns a snapshot of the session.
func (s *Service) Get(id uuid.UUID) (*Session, error) {
	return s.store.Get(id)
}

// Suggest runs phase 1: it asks the model for structured refinements of
// the session's seed idea. On success it stores the suggestions and
// pre-populates the draft prompt with the seed plus the suggestions so
// phase 2 starts from the combined text. On failure the session is left
// untouched and the classified error is returned.
func (s *Service) Suggest(ctx context.Context, id uuid.UUID) (*Session, error) {
	session, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}

	if session.SeedIdea == "" {
		return nil, ErrEmptySeedIdea
	}

	result := s.generator.Generate(ctx,
		"Rough Idea: "+session.SeedIdea,
		suggestionInstruction)
	if !result.OK() {
		s.logger.Warn("suggestion generation failed",
			"session_id", id,
			"kind", result.Kind())
		return nil, result.Err
	}

	draft := fmt.Sprintf("Seed Idea: %s\n\nAI Suggestions:\n%s", session.SeedIdea, result.Text)
	return s.store.Update(id, func(sess *Session) {
		sess.Suggestions = result.Text
		sess.DraftPrompt = draft
	})
}

// Revise runs phase 2: it stores the human-edited draft prompt. No model
// call is involved.
func (s *Service) Revise(id uuid.UUID, draft string) (*Session, error) {
	if draft == "" {
		return nil, ErrEmptyDraft
	}

	return s.store.Update(id, func(sess *Session) {
		sess.DraftPrompt = draft
	})
}

// Summarize runs phase 3: it sends the session's draft prompt to the
// model with the storyteller instruction and stores the resulting
// summary. On failure the session, including the draft, is left
// untouched.
func (s *Service) Summarize(ctx context.Context, id uuid.UUID) (*Session, error) {
	session, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}

	if session.DraftPrompt == "" {
		return nil, ErrEmptyDraft
	}

	result := s.generator.Generate(ctx, session.DraftPrompt, summaryInstruction)
	if !result.OK() {
		s.logger.Warn("summary generation failed",
			"session_id", id,
			"kind", result.Kind())
		return nil, result.Err
	}

	return s.store.Update(id, func(sess *Session) {
		sess.FinalSummary = result.Text
	})
}
