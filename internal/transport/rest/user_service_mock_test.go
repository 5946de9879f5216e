package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
	"github.com/heartmarshall/moodjournal-backend/internal/service/user"
)

var _ userService = &userServiceMock{}

type userServiceMock struct {
	ListUsersFunc    func(ctx context.Context, input user.ListUsersInput) ([]domain.User, int, error)
	SetUserRoleFunc  func(ctx context.Context, targetUserID string, role domain.UserRole) (*domain.User, error)
	BanUserFunc      func(ctx context.Context, input user.BanUserInput) (*domain.User, error)
	UnbanUserFunc    func(ctx context.Context, targetUserID string) (*domain.User, error)
	UserAuditLogFunc func(ctx context.Context, targetUserID string, limit int) ([]domain.AuditRecord, error)

	calls struct {
		ListUsers []struct {
			Ctx   context.Context
			Input user.ListUsersInput
		}
		SetUserRole []struct {
			Ctx          context.Context
			TargetUserID string
			Role         domain.UserRole
		}
		BanUser []struct {
			Ctx   context.Context
			Input user.BanUserInput
		}
		UnbanUser []struct {
			Ctx          context.Context
			TargetUserID string
		}
		UserAuditLog []struct {
			Ctx          context.Context
			TargetUserID string
			Limit        int
		}
	}
	lockListUsers    sync.RWMutex
	lockSetUserRole  sync.RWMutex
	lockBanUser      sync.RWMutex
	lockUnbanUser    sync.RWMutex
	lockUserAuditLog sync.RWMutex
}

func (mock *userServiceMock) ListUsers(ctx context.Context, input user.ListUsersInput) ([]domain.User, int, error) {
	if mock.ListUsersFunc == nil {
		panic("userServiceMock.ListUsersFunc: method is nil but userService.ListUsers was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.ListUsersInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockListUsers.Lock()
	mock.calls.ListUsers = append(mock.calls.ListUsers, callInfo)
	mock.lockListUsers.Unlock()
	return mock.ListUsersFunc(ctx, input)
}

func (mock *userServiceMock) ListUsersCalls() []struct {
	Ctx   context.Context
	Input user.ListUsersInput
} {
	mock.lockListUsers.RLock()
	calls := mock.calls.ListUsers
	mock.lockListUsers.RUnlock()
	return calls
}

func (mock *userServiceMock) SetUserRole(ctx context.Context, targetUserID string, role domain.UserRole) (*domain.User, error) {
	if mock.SetUserRoleFunc == nil {
		panic("userServiceMock.SetUserRoleFunc: method is nil but userService.SetUserRole was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		TargetUserID string
		Role         domain.UserRole
	}{
		Ctx:          ctx,
		TargetUserID: targetUserID,
		Role:         role,
	}
	mock.lockSetUserRole.Lock()
	mock.calls.SetUserRole = append(mock.calls.SetUserRole, callInfo)
	mock.lockSetUserRole.Unlock()
	return mock.SetUserRoleFunc(ctx, targetUserID, role)
}

func (mock *userServiceMock) SetUserRoleCalls() []struct {
	Ctx          context.Context
	TargetUserID string
	Role         domain.UserRole
} {
	mock.lockSetUserRole.RLock()
	calls := mock.calls.SetUserRole
	mock.lockSetUserRole.RUnlock()
	return calls
}

func (mock *userServiceMock) BanUser(ctx context.Context, input user.BanUserInput) (*domain.User, error) {
	if mock.BanUserFunc == nil {
		panic("userServiceMock.BanUserFunc: method is nil but userService.BanUser was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.BanUserInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockBanUser.Lock()
	mock.calls.BanUser = append(mock.calls.BanUser, callInfo)
	mock.lockBanUser.Unlock()
	return mock.BanUserFunc(ctx, input)
}

func (mock *userServiceMock) BanUserCalls() []struct {
	Ctx   context.Context
	Input user.BanUserInput
} {
	mock.lockBanUser.RLock()
	calls := mock.calls.BanUser
	mock.lockBanUser.RUnlock()
	return calls
}

func (mock *userServiceMock) UnbanUser(ctx context.Context, targetUserID string) (*domain.User, error) {
	if mock.UnbanUserFunc == nil {
		panic("userServiceMock.UnbanUserFunc: method is nil but userService.UnbanUser was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		TargetUserID string
	}{
		Ctx:          ctx,
		TargetUserID: targetUserID,
	}
	mock.lockUnbanUser.Lock()
	mock.calls.UnbanUser = append(mock.calls.UnbanUser, callInfo)
	mock.lockUnbanUser.Unlock()
	return mock.UnbanUserFunc(ctx, targetUserID)
}

func (mock *userServiceMock) UnbanUserCalls() []struct {
	Ctx          context.Context
	TargetUserID string
} {
	mock.lockUnbanUser.RLock()
	calls := mock.calls.UnbanUser
	mock.lockUnbanUser.RUnlock()
	return calls
}

func (mock *userServiceMock) UserAuditLog(ctx context.Context, targetUserID string, limit int) ([]domain.AuditRecord, error) {
	if mock.UserAuditLogFunc == nil {
		panic("userServiceMock.UserAuditLogFunc: method is nil but userService.UserAuditLog was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		TargetUserID string
		Limit        int
	}{
		Ctx:          ctx,
		TargetUserID: targetUserID,
		Limit:        limit,
	}
	mock.lockUserAuditLog.Lock()
	mock.calls.UserAuditLog = append(mock.calls.UserAuditLog, callInfo)
	mock.lockUserAuditLog.Unlock()
	return mock.UserAuditLogFunc(ctx, targetUserID, limit)
}

func (mock *userServiceMock) UserAuditLogCalls() []struct {
	Ctx          context.Context
	TargetUserID string
	Limit        int
} {
	mock.lockUserAuditLog.RLock()
	calls := mock.calls.UserAuditLog
	mock.lockUserAuditLog.RUnlock()
	return calls
}
