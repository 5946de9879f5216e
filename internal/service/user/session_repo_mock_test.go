package user

import (
	"context"
	"sync"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	DeleteByUserFunc func(ctx context.Context, userID string) (int, error)

	calls struct {
		DeleteByUser []struct {
			Ctx    context.Context
			UserID string
		}
	}
	lockDeleteByUser sync.RWMutex
}

func (mock *sessionRepoMock) DeleteByUser(ctx context.Context, userID string) (int, error) {
	if mock.DeleteByUserFunc == nil {
		panic("sessionRepoMock.DeleteByUserFunc: method is nil but sessionRepo.DeleteByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockDeleteByUser.Lock()
	mock.calls.DeleteByUser = append(mock.calls.DeleteByUser, callInfo)
	mock.lockDeleteByUser.Unlock()
	return mock.DeleteByUserFunc(ctx, userID)
}

func (mock *sessionRepoMock) DeleteByUserCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockDeleteByUser.RLock()
	calls := mock.calls.DeleteByUser
	mock.lockDeleteByUser.RUnlock()
	return calls
}
