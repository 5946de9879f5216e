package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
	"github.com/heartmarshall/moodjournal-backend/internal/service/auth"
)

// Result holds the outcome of a pipeline run.
type Result struct {
	UserID   string
	Parsed   int
	Inserted int
	// Skipped is set when the demo user already existed and no samples were inserted.
	Skipped  bool
	Duration time.Duration
}

// Pipeline signs in the demo user and inserts the samples for them.
type Pipeline struct {
	log     *slog.Logger
	auth    Authenticator
	repo    EntryBulkRepo
	cfg     Config
	samples []Sample
	now     func() time.Time
}

// NewPipeline creates a new Pipeline over samples.
func NewPipeline(log *slog.Logger, authn Authenticator, repo EntryBulkRepo, cfg Config, samples []Sample) *Pipeline {
	return &Pipeline{
		log:     log,
		auth:    authn,
		repo:    repo,
		cfg:     cfg,
		samples: samples,
		now:     time.Now,
	}
}

// Run executes the pipeline. In dry-run mode nothing is written.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	res := Result{Parsed: len(p.samples)}

	if p.cfg.DryRun {
		p.log.Info("dry run: samples parsed", slog.Int("samples", res.Parsed))
		res.Duration = time.Since(start)
		return res, nil
	}

	// Step 1: Obtain the demo user.
	userID, existed, err := p.ensureUser(ctx)
	if err != nil {
		return res, err
	}
	res.UserID = userID

	// A returning demo user already holds the samples from an earlier run.
	if existed {
		res.Skipped = true
		res.Duration = time.Since(start)
		p.log.Info("demo user exists, skipping samples",
			slog.String("user_id", userID),
			slog.Int("samples", res.Parsed),
		)
		return res, nil
	}

	// Step 2: Insert in batches.
	entries := p.buildEntries(userID)
	inserted, err := batchProcess(entries, p.cfg.BatchSize, func(batch []domain.JournalEntry) (int, error) {
		return p.repo.BulkCreate(ctx, batch)
	})
	res.Inserted = inserted
	res.Duration = time.Since(start)
	if err != nil {
		return res, fmt.Errorf("insert entries: %w", err)
	}

	p.log.Info("seeding completed",
		slog.String("user_id", userID),
		slog.Int("inserted", inserted),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

// ensureUser signs the demo user up, falling back to sign-in when the
// email is already registered. existed reports the fallback.
func (p *Pipeline) ensureUser(ctx context.Context) (userID string, existed bool, err error) {
	result, err := p.auth.SignUp(ctx, auth.SignUpInput{
		Name:     p.cfg.Name,
		Email:    p.cfg.Email,
		Password: p.cfg.Password,
	})
	if err == nil {
		p.log.Info("demo user created", slog.String("user_id", result.User.ID))
		return result.User.ID, false, nil
	}
	if !errors.Is(err, domain.ErrAlreadyExists) {
		return "", false, fmt.Errorf("sign up demo user: %w", err)
	}

	result, err = p.auth.SignIn(ctx, auth.SignInInput{Email: p.cfg.Email, Password: p.cfg.Password})
	if err != nil {
		return "", false, fmt.Errorf("sign in demo user: %w", err)
	}
	return result.User.ID, true, nil
}

// buildEntries turns samples into entries, one minute apart so the first
// sample lists first.
func (p *Pipeline) buildEntries(userID string) []domain.JournalEntry {
	base := p.now().UTC().Truncate(time.Microsecond)
	out := make([]domain.JournalEntry, 0, len(p.samples))
	for i, s := range p.samples {
		ts := base.Add(-time.Duration(i) * time.Minute)
		out = append(out, domain.JournalEntry{
			ID:        uuid.NewString(),
			UserID:    userID,
			Title:     s.Title,
			Content:   s.Content,
			Mood:      domain.CleanMood(s.Mood),
			IsPublic:  s.IsPublic,
			Tags:      domain.NormalizeTags(s.Tags),
			Metadata:  map[string]any{},
			CreatedAt: ts,
			UpdatedAt: ts,
		})
	}
	return out
}

func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 50
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
