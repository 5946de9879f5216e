package auth

import (
	"context"
	"sync"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateFunc        func(ctx context.Context, session *domain.Session) (*domain.Session, error)
	DeleteFunc        func(ctx context.Context, id string) error
	DeleteExpiredFunc func(ctx context.Context) (int, error)
	GetByIDFunc       func(ctx context.Context, id string) (*domain.Session, error)

	calls struct {
		Create []struct {
			Ctx     context.Context
			Session *domain.Session
		}
		Delete []struct {
			Ctx context.Context
			ID  string
		}
		DeleteExpired []struct {
			Ctx context.Context
		}
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockCreate        sync.RWMutex
	lockDelete        sync.RWMutex
	lockDeleteExpired sync.RWMutex
	lockGetByID       sync.RWMutex
}

func (mock *sessionRepoMock) Create(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	if mock.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Session *domain.Session
	}{
		Ctx:     ctx,
		Session: session,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, session)
}

func (mock *sessionRepoMock) CreateCalls() []struct {
	Ctx     context.Context
	Session *domain.Session
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sessionRepoMock) Delete(ctx context.Context, id string) error {
	if mock.DeleteFunc == nil {
		panic("sessionRepoMock.DeleteFunc: method is nil but sessionRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *sessionRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *sessionRepoMock) DeleteExpired(ctx context.Context) (int, error) {
	if mock.DeleteExpiredFunc == nil {
		panic("sessionRepoMock.DeleteExpiredFunc: method is nil but sessionRepo.DeleteExpired was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockDeleteExpired.Lock()
	mock.calls.DeleteExpired = append(mock.calls.DeleteExpired, callInfo)
	mock.lockDeleteExpired.Unlock()
	return mock.DeleteExpiredFunc(ctx)
}

func (mock *sessionRepoMock) DeleteExpiredCalls() []struct {
	Ctx context.Context
} {
	mock.lockDeleteExpired.RLock()
	calls := mock.calls.DeleteExpired
	mock.lockDeleteExpired.RUnlock()
	return calls
}

func (mock *sessionRepoMock) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	if mock.GetByIDFunc == nil {
		panic("sessionRepoMock.GetByIDFunc: method is nil but sessionRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *sessionRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
