package user

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	ClearBanFunc   func(ctx context.Context, id string) (*domain.User, error)
	CountFunc      func(ctx context.Context) (int, error)
	GetByIDFunc    func(ctx context.Context, id string) (*domain.User, error)
	ListFunc       func(ctx context.Context, limit int, offset int) ([]domain.User, error)
	SetBanFunc     func(ctx context.Context, id string, reason *string, expires *time.Time) (*domain.User, error)
	UpdateRoleFunc func(ctx context.Context, id string, role domain.UserRole) (*domain.User, error)

	calls struct {
		ClearBan []struct {
			Ctx context.Context
			ID  string
		}
		Count []struct {
			Ctx context.Context
		}
		GetByID []struct {
			Ctx context.Context
			ID  string
		}
		List []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
		SetBan []struct {
			Ctx     context.Context
			ID      string
			Reason  *string
			Expires *time.Time
		}
		UpdateRole []struct {
			Ctx  context.Context
			ID   string
			Role domain.UserRole
		}
	}
	lockClearBan   sync.RWMutex
	lockCount      sync.RWMutex
	lockGetByID    sync.RWMutex
	lockList       sync.RWMutex
	lockSetBan     sync.RWMutex
	lockUpdateRole sync.RWMutex
}

func (mock *userRepoMock) ClearBan(ctx context.Context, id string) (*domain.User, error) {
	if mock.ClearBanFunc == nil {
		panic("userRepoMock.ClearBanFunc: method is nil but userRepo.ClearBan was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockClearBan.Lock()
	mock.calls.ClearBan = append(mock.calls.ClearBan, callInfo)
	mock.lockClearBan.Unlock()
	return mock.ClearBanFunc(ctx, id)
}

func (mock *userRepoMock) ClearBanCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockClearBan.RLock()
	calls := mock.calls.ClearBan
	mock.lockClearBan.RUnlock()
	return calls
}

func (mock *userRepoMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("userRepoMock.CountFunc: method is nil but userRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *userRepoMock) CountCalls() []struct {
	Ctx context.Context
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
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

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) List(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{
		Ctx:    ctx,
		Limit:  limit,
		Offset: offset,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, limit, offset)
}

func (mock *userRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *userRepoMock) SetBan(ctx context.Context, id string, reason *string, expires *time.Time) (*domain.User, error) {
	if mock.SetBanFunc == nil {
		panic("userRepoMock.SetBanFunc: method is nil but userRepo.SetBan was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      string
		Reason  *string
		Expires *time.Time
	}{
		Ctx:     ctx,
		ID:      id,
		Reason:  reason,
		Expires: expires,
	}
	mock.lockSetBan.Lock()
	mock.calls.SetBan = append(mock.calls.SetBan, callInfo)
	mock.lockSetBan.Unlock()
	return mock.SetBanFunc(ctx, id, reason, expires)
}

func (mock *userRepoMock) SetBanCalls() []struct {
	Ctx     context.Context
	ID      string
	Reason  *string
	Expires *time.Time
} {
	mock.lockSetBan.RLock()
	calls := mock.calls.SetBan
	mock.lockSetBan.RUnlock()
	return calls
}

func (mock *userRepoMock) UpdateRole(ctx context.Context, id string, role domain.UserRole) (*domain.User, error) {
	if mock.UpdateRoleFunc == nil {
		panic("userRepoMock.UpdateRoleFunc: method is nil but userRepo.UpdateRole was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		ID   string
		Role domain.UserRole
	}{
		Ctx:  ctx,
		ID:   id,
		Role: role,
	}
	mock.lockUpdateRole.Lock()
	mock.calls.UpdateRole = append(mock.calls.UpdateRole, callInfo)
	mock.lockUpdateRole.Unlock()
	return mock.UpdateRoleFunc(ctx, id, role)
}

func (mock *userRepoMock) UpdateRoleCalls() []struct {
	Ctx  context.Context
	ID   string
	Role domain.UserRole
} {
	mock.lockUpdateRole.RLock()
	calls := mock.calls.UpdateRole
	mock.lockUpdateRole.RUnlock()
	return calls
}
