// Package journal implements journal entry operations for the signed-in user.
package journal

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

// entryRepo defines the journal entry repository interface needed by the service.
type entryRepo interface {
	List(ctx context.Context, userID string, filter domain.EntryFilter) ([]domain.JournalEntry, error)
	GetByID(ctx context.Context, userID, id string) (*domain.JournalEntry, error)
	Create(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error)
	Update(ctx context.Context, userID, id string, patch domain.EntryPatch) (*domain.JournalEntry, error)
	Delete(ctx context.Context, userID, id string) error
}

// moodAnalyzer derives a mood emoji from entry content.
type moodAnalyzer interface {
	Analyze(ctx context.Context, content string) (string, error)
}

// Service implements journal entry operations.
type Service struct {
	log         *slog.Logger
	entries     entryRepo
	mood        moodAnalyzer
	moodTimeout time.Duration
}

// NewService creates a new journal service.
func NewService(logger *slog.Logger, entries entryRepo, mood moodAnalyzer, moodTimeout time.Duration) *Service {
	return &Service{
		log:         logger.With("service", "journal"),
		entries:     entries,
		mood:        mood,
		moodTimeout: moodTimeout,
	}
}

// deriveMood asks the analyzer for a mood. Blank content is never sent.
// Any failure is logged and reported as no mood.
func (s *Service) deriveMood(ctx context.Context, userID, content string) *string {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	moodCtx, cancel := context.WithTimeout(ctx, s.moodTimeout)
	defer cancel()

	start := time.Now()
	raw, err := s.mood.Analyze(moodCtx, content)
	if err != nil {
		s.log.WarnContext(ctx, "mood analysis failed",
			slog.String("user_id", userID),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return nil
	}

	m := domain.CleanMood(raw)
	if m == nil {
		s.log.WarnContext(ctx, "mood analysis returned empty output", slog.String("user_id", userID))
	}
	return m
}
