// Package mood derives a single-emoji mood from journal text using a
// generative-AI backend.
package mood

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/moodjournal-backend/internal/config"
	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

// Provider returns one emoji describing the mood of content.
type Provider interface {
	Analyze(ctx context.Context, content string) (string, error)
}

const promptTemplate = `Generate one emoji that represents the mood of the journal entry below.
The output must contain only that single emoji and nothing else.

Here is the journal entry:
%s`

// BuildPrompt renders the mood prompt for content.
func BuildPrompt(content string) string {
	return fmt.Sprintf(promptTemplate, content)
}

// New selects a provider according to cfg. cfg must already be validated.
func New(cfg config.MoodConfig, logger *slog.Logger) Provider {
	switch cfg.Provider {
	case config.MoodProviderGemini:
		return NewGemini(cfg, logger)
	case config.MoodProviderAnthropic:
		return NewAnthropic(cfg, logger)
	default:
		return NewDisabled()
	}
}

// clean turns raw model output into a stored mood value.
func clean(provider, raw string) (string, error) {
	m := domain.CleanMood(raw)
	if m == nil {
		return "", fmt.Errorf("%s: empty response: %w", provider, domain.ErrExternalService)
	}
	return *m, nil
}

// ---------------------------------------------------------------------------
// Disabled
// ---------------------------------------------------------------------------

// Disabled always fails, so entries are stored without a mood.
type Disabled struct{}

// NewDisabled creates a provider that never calls out.
func NewDisabled() *Disabled { return &Disabled{} }

// Analyze implements Provider.
func (Disabled) Analyze(_ context.Context, _ string) (string, error) {
	return "", fmt.Errorf("mood provider disabled: %w", domain.ErrExternalService)
}

func trimBaseURL(u string) string {
	return strings.TrimRight(u, "/")
}
