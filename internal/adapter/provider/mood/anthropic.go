package mood

import (
	"context"
	"fmt"
	"log/slog"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/moodjournal-backend/internal/config"
	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

// Anthropic asks a Claude model for the mood emoji.
type Anthropic struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	log       *slog.Logger
}

// NewAnthropic creates an Anthropic provider. Retries are disabled; the
// journal service enforces its own timeout around each call.
func NewAnthropic(cfg config.MoodConfig, logger *slog.Logger) *Anthropic {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(trimBaseURL(cfg.BaseURL)+"/"))
	}

	return &Anthropic{
		client:    anthropic.NewClient(opts...),
		model:     cfg.ResolvedModel(),
		maxTokens: cfg.MaxTokens,
		log:       logger.With("adapter", "anthropic"),
	}
}

// Analyze implements Provider.
func (a *Anthropic) Analyze(ctx context.Context, content string) (string, error) {
	a.log.DebugContext(ctx, "anthropic request", slog.String("model", a.model), slog.Int("content_len", len(content)))

	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(a.model),
		MaxTokens: a.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(BuildPrompt(content))),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic: %v: %w", err, domain.ErrExternalService)
	}

	if len(msg.Content) == 0 {
		return "", fmt.Errorf("anthropic: empty content: %w", domain.ErrExternalService)
	}

	return clean("anthropic", msg.Content[0].Text)
}
