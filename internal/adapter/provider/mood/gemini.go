package mood

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/heartmarshall/moodjournal-backend/internal/config"
	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// Gemini calls the Google Generative Language generateContent endpoint.
type Gemini struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	log        *slog.Logger
}

// NewGemini creates a Gemini provider bounded by cfg.Timeout.
func NewGemini(cfg config.MoodConfig, logger *slog.Logger) *Gemini {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultGeminiBaseURL
	}
	return &Gemini{
		baseURL:    trimBaseURL(baseURL),
		apiKey:     cfg.APIKey,
		model:      cfg.ResolvedModel(),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "gemini"),
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Analyze implements Provider.
func (g *Gemini) Analyze(ctx context.Context, content string) (string, error) {
	reqURL := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, url.PathEscape(g.model))

	payload, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: BuildPrompt(content)}}}},
	})
	if err != nil {
		return "", fmt.Errorf("gemini: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("gemini: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	g.log.DebugContext(ctx, "gemini request", slog.String("model", g.model), slog.Int("content_len", len(content)))

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini: request failed: %v: %w", err, domain.ErrExternalService)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("gemini: read body: %v: %w", err, domain.ErrExternalService)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini: unexpected status %d: %w", resp.StatusCode, domain.ErrExternalService)
	}

	var out geminiResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("gemini: decode json: %v: %w", err, domain.ErrExternalService)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: no candidates: %w", domain.ErrExternalService)
	}

	return clean("gemini", out.Candidates[0].Content.Parts[0].Text)
}
