package journal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
	"github.com/heartmarshall/moodjournal-backend/pkg/ctxutil"
)

// ListEntries returns the caller's entries, newest first.
func (s *Service) ListEntries(ctx context.Context, input ListInput) ([]domain.JournalEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if input.Tag != nil {
		tag := domain.NormalizeTag(*input.Tag)
		input.Tag = &tag
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	entries, err := s.entries.List(ctx, userID, domain.EntryFilter{
		Tag:    input.Tag,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	return entries, nil
}

// GetEntry returns a single entry owned by the caller.
// An entry owned by someone else is reported as ErrNotFound.
func (s *Service) GetEntry(ctx context.Context, id string) (*domain.JournalEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entry, err := s.entries.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}

	return entry, nil
}

// CreateEntry stores a new entry for the caller. A mood is derived from
// non-blank content; failure to derive one does not fail the create.
func (s *Service) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.JournalEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Title = strings.TrimSpace(input.Title)
	input.Tags = domain.NormalizeTags(input.Tags)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	metadata := input.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	now := time.Now().UTC().Truncate(time.Microsecond)
	entry := &domain.JournalEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     input.Title,
		Content:   input.Content,
		Mood:      s.deriveMood(ctx, userID, input.Content),
		IsPublic:  input.IsPublic,
		Tags:      input.Tags,
		Metadata:  metadata,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.entries.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}

	s.log.InfoContext(ctx, "entry created",
		slog.String("user_id", userID),
		slog.String("entry_id", created.ID),
		slog.Bool("has_mood", created.Mood != nil),
	)

	return created, nil
}

// UpdateEntry applies a partial update to an entry owned by the caller.
// New non-blank content re-derives the mood unless a mood is supplied; if
// derivation fails the stored mood is kept.
func (s *Service) UpdateEntry(ctx context.Context, input UpdateEntryInput) (*domain.JournalEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		input.Title = &title
	}
	if input.Tags != nil {
		tags := domain.NormalizeTags(*input.Tags)
		input.Tags = &tags
	}
	if input.Mood != nil {
		// An explicit blank mood clears the stored value.
		cleaned := ""
		if m := domain.CleanMood(*input.Mood); m != nil {
			cleaned = *m
		}
		input.Mood = &cleaned
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	patch := domain.EntryPatch{
		Title:    input.Title,
		Content:  input.Content,
		Mood:     input.Mood,
		IsPublic: input.IsPublic,
		Tags:     input.Tags,
		Metadata: input.Metadata,
	}
	if input.Content != nil && input.Mood == nil {
		// Entries the caller does not own are rejected before the analyzer sees their content.
		if _, err := s.entries.GetByID(ctx, userID, input.ID); err != nil {
			return nil, fmt.Errorf("update entry: %w", err)
		}
		patch.Mood = s.deriveMood(ctx, userID, *input.Content)
	}

	updated, err := s.entries.Update(ctx, userID, input.ID, patch)
	if err != nil {
		return nil, fmt.Errorf("update entry: %w", err)
	}

	s.log.InfoContext(ctx, "entry updated",
		slog.String("user_id", userID),
		slog.String("entry_id", updated.ID),
	)

	return updated, nil
}

// DeleteEntry removes an entry owned by the caller.
func (s *Service) DeleteEntry(ctx context.Context, id string) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.entries.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}

	s.log.InfoContext(ctx, "entry deleted",
		slog.String("user_id", userID),
		slog.String("entry_id", id),
	)

	return nil
}
