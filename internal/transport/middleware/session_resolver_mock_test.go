package middleware

import (
	"context"
	"sync"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

var _ SessionResolver = &SessionResolverMock{}

type SessionResolverMock struct {
	GetSessionFunc func(ctx context.Context, token string) (*domain.AuthSession, error)

	calls struct {
		GetSession []struct {
			Ctx   context.Context
			Token string
		}
	}
	lockGetSession sync.RWMutex
}

func (mock *SessionResolverMock) GetSession(ctx context.Context, token string) (*domain.AuthSession, error) {
	if mock.GetSessionFunc == nil {
		panic("SessionResolverMock.GetSessionFunc: method is nil but SessionResolver.GetSession was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{
		Ctx:   ctx,
		Token: token,
	}
	mock.lockGetSession.Lock()
	mock.calls.GetSession = append(mock.calls.GetSession, callInfo)
	mock.lockGetSession.Unlock()
	return mock.GetSessionFunc(ctx, token)
}

func (mock *SessionResolverMock) GetSessionCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockGetSession.RLock()
	calls := mock.calls.GetSession
	mock.lockGetSession.RUnlock()
	return calls
}
