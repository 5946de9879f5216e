package seeder

import (
	"context"
	"sync"

	"github.com/heartmarshall/moodjournal-backend/internal/service/auth"
)

var _ Authenticator = &AuthenticatorMock{}

type AuthenticatorMock struct {
	SignUpFunc func(ctx context.Context, input auth.SignUpInput) (*auth.AuthResult, error)
	SignInFunc func(ctx context.Context, input auth.SignInInput) (*auth.AuthResult, error)

	calls struct {
		SignUp []struct {
			Ctx   context.Context
			Input auth.SignUpInput
		}
		SignIn []struct {
			Ctx   context.Context
			Input auth.SignInInput
		}
	}
	lockSignUp sync.RWMutex
	lockSignIn sync.RWMutex
}

func (mock *AuthenticatorMock) SignUp(ctx context.Context, input auth.SignUpInput) (*auth.AuthResult, error) {
	if mock.SignUpFunc == nil {
		panic("AuthenticatorMock.SignUpFunc: method is nil but Authenticator.SignUp was just called")
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

func (mock *AuthenticatorMock) SignUpCalls() []struct {
	Ctx   context.Context
	Input auth.SignUpInput
} {
	mock.lockSignUp.RLock()
	calls := mock.calls.SignUp
	mock.lockSignUp.RUnlock()
	return calls
}

func (mock *AuthenticatorMock) SignIn(ctx context.Context, input auth.SignInInput) (*auth.AuthResult, error) {
	if mock.SignInFunc == nil {
		panic("AuthenticatorMock.SignInFunc: method is nil but Authenticator.SignIn was just called")
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

func (mock *AuthenticatorMock) SignInCalls() []struct {
	Ctx   context.Context
	Input auth.SignInInput
} {
	mock.lockSignIn.RLock()
	calls := mock.calls.SignIn
	mock.lockSignIn.RUnlock()
	return calls
}
