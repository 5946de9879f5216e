package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moodjournal-backend/internal/auth"
	"github.com/heartmarshall/moodjournal-backend/internal/config"
	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// accountRepo defines the credential account repository interface needed by auth service.
type accountRepo interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	GetByUserAndProvider(ctx context.Context, userID string, provider domain.AccountProvider) (*domain.Account, error)
}

// sessionRepo defines the session repository interface needed by auth service.
type sessionRepo interface {
	Create(ctx context.Context, session *domain.Session) (*domain.Session, error)
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) (int, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager defines the session token interface needed by auth service.
type jwtManager interface {
	GenerateSessionToken(userID string, sessionID string, expiresAt time.Time) (string, error)
	ValidateSessionToken(token string) (auth.SessionClaims, error)
}

// Service implements auth operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	accounts accountRepo
	sessions sessionRepo
	tx       txManager
	jwt      jwtManager
	cfg      config.AuthConfig
	now      func() time.Time
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	accounts accountRepo,
	sessions sessionRepo,
	tx txManager,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "auth"),
		users:    users,
		accounts: accounts,
		sessions: sessions,
		tx:       tx,
		jwt:      jwt,
		cfg:      cfg,
		now:      time.Now,
	}
}

// startSession stores a new session for user and signs its token.
func (s *Service) startSession(ctx context.Context, user *domain.User, client ClientInfo) (*AuthResult, error) {
	now := s.now().UTC().Truncate(time.Microsecond)
	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: now.Add(s.cfg.SessionTTL),
		IPAddress: client.IPAddress,
		UserAgent: client.UserAgent,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.sessions.Create(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	token, err := s.jwt.GenerateSessionToken(user.ID, created.ID, created.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	return &AuthResult{
		Token:   token,
		User:    user,
		Session: created,
	}, nil
}
