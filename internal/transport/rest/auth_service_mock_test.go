package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
	"github.com/heartmarshall/moodjournal-backend/internal/service/auth"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	SignUpFunc     func(ctx context.Context, input auth.SignUpInput) (*auth.AuthResult, error)
	SignInFunc     func(ctx context.Context, input auth.SignInInput) (*auth.AuthResult, error)
	SignOutFunc    func(ctx context.Context, token string) error
	GetSessionFunc func(ctx context.Context, token string) (*domain.AuthSession, error)

	calls struct {
		SignUp []struct {
			Ctx   context.Context
			Input auth.SignUpInput
		}
		SignIn []struct {
			Ctx   context.Context
			Input auth.SignInInput
		}
		SignOut []struct {
			Ctx   context.Context
			Token string
		}
		GetSession []struct {
			Ctx   context.Context
			Token string
		}
	}
	lockSignUp     sync.RWMutex
	lockSignIn     sync.RWMutex
	lockSignOut    sync.RWMutex
	lockGetSession sync.RWMutex
}

func (mock *authServiceMock) SignUp(ctx context.Context, input auth.SignUpInput) (*auth.AuthResult, error) {
	if mock.SignUpFunc == nil {
		panic("authServiceMock.SignUpFunc: method is nil but authService.SignUp was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.SignUpInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSignUp.Lock()
	mock.calls.SignUp = append(mock.calls.SignUp, callInfo)
	mock.lockSignUp.Unlock()
	return mock.SignUpFunc(ctx, input)
}

func (mock *authServiceMock) SignUpCalls() []struct {
	Ctx   context.Context
	Input auth.SignUpInput
} {
	mock.lockSignUp.RLock()
	calls := mock.calls.SignUp
	mock.lockSignUp.RUnlock()
	return calls
}

func (mock *authServiceMock) SignIn(ctx context.Context, input auth.SignInInput) (*auth.AuthResult, error) {
	if mock.SignInFunc == nil {
		panic("authServiceMock.SignInFunc: method is nil but authService.SignIn was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.SignInInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSignIn.Lock()
	mock.calls.SignIn = append(mock.calls.SignIn, callInfo)
	mock.lockSignIn.Unlock()
	return mock.SignInFunc(ctx, input)
}

func (mock *authServiceMock) SignInCalls() []struct {
	Ctx   context.Context
	Input auth.SignInInput
} {
	mock.lockSignIn.RLock()
	calls := mock.calls.SignIn
	mock.lockSignIn.RUnlock()
	return calls
}

func (mock *authServiceMock) SignOut(ctx context.Context, token string) error {
	if mock.SignOutFunc == nil {
		panic("authServiceMock.SignOutFunc: method is nil but authService.SignOut was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Token string
	}{
		Ctx:   ctx,
		Token: token,
	}
	mock.lockSignOut.Lock()
	mock.calls.SignOut = append(mock.calls.SignOut, callInfo)
	mock.lockSignOut.Unlock()
	return mock.SignOutFunc(ctx, token)
}

func (mock *authServiceMock) SignOutCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockSignOut.RLock()
	calls := mock.calls.SignOut
	mock.lockSignOut.RUnlock()
	return calls
}

func (mock *authServiceMock) GetSession(ctx context.Context, token string) (*domain.AuthSession, error) {
	if mock.GetSessionFunc == nil {
		panic("authServiceMock.GetSessionFunc: method is nil but authService.GetSession was just called")
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

func (mock *authServiceMock) GetSessionCalls() []struct {
	Ctx   context.Context
	Token string
} {
	mock.lockGetSession.RLock()
	calls := mock.calls.GetSession
	mock.lockGetSession.RUnlock()
	return calls
}
