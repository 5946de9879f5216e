package auth

import (
	"sync"
	"time"

	"github.com/heartmarshall/moodjournal-backend/internal/auth"
)

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateSessionTokenFunc func(userID string, sessionID string, expiresAt time.Time) (string, error)
	ValidateSessionTokenFunc func(token string) (auth.SessionClaims, error)

	calls struct {
		GenerateSessionToken []struct {
			UserID    string
			SessionID string
			ExpiresAt time.Time
		}
		ValidateSessionToken []struct {
			Token string
		}
	}
	lockGenerateSessionToken sync.RWMutex
	lockValidateSessionToken sync.RWMutex
}

func (mock *jwtManagerMock) GenerateSessionToken(userID string, sessionID string, expiresAt time.Time) (string, error) {
	if mock.GenerateSessionTokenFunc == nil {
		panic("jwtManagerMock.GenerateSessionTokenFunc: method is nil but jwtManager.GenerateSessionToken was just called")
	}
	callInfo := struct {
		UserID    string
		SessionID string
		ExpiresAt time.Time
	}{
		UserID:    userID,
		SessionID: sessionID,
		ExpiresAt: expiresAt,
	}
	mock.lockGenerateSessionToken.Lock()
	mock.calls.GenerateSessionToken = append(mock.calls.GenerateSessionToken, callInfo)
	mock.lockGenerateSessionToken.Unlock()
	return mock.GenerateSessionTokenFunc(userID, sessionID, expiresAt)
}

func (mock *jwtManagerMock) GenerateSessionTokenCalls() []struct {
	UserID    string
	SessionID string
	ExpiresAt time.Time
} {
	mock.lockGenerateSessionToken.RLock()
	calls := mock.calls.GenerateSessionToken
	mock.lockGenerateSessionToken.RUnlock()
	return calls
}

func (mock *jwtManagerMock) ValidateSessionToken(token string) (auth.SessionClaims, error) {
	if mock.ValidateSessionTokenFunc == nil {
		panic("jwtManagerMock.ValidateSessionTokenFunc: method is nil but jwtManager.ValidateSessionToken was just called")
	}
	callInfo := struct {
		Token string
	}{
		Token: token,
	}
	mock.lockValidateSessionToken.Lock()
	mock.calls.ValidateSessionToken = append(mock.calls.ValidateSessionToken, callInfo)
	mock.lockValidateSessionToken.Unlock()
	return mock.ValidateSessionTokenFunc(token)
}

func (mock *jwtManagerMock) ValidateSessionTokenCalls() []struct {
	Token string
} {
	mock.lockValidateSessionToken.RLock()
	calls := mock.calls.ValidateSessionToken
	mock.lockValidateSessionToken.RUnlock()
	return calls
}
