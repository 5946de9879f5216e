package journal

import (
	"context"
	"sync"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	CreateFunc  func(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error)
	DeleteFunc  func(ctx context.Context, userID string, id string) error
	GetByIDFunc func(ctx context.Context, userID string, id string) (*domain.JournalEntry, error)
	ListFunc    func(ctx context.Context, userID string, filter domain.EntryFilter) ([]domain.JournalEntry, error)
	UpdateFunc  func(ctx context.Context, userID string, id string, patch domain.EntryPatch) (*domain.JournalEntry, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Entry *domain.JournalEntry
		}
		Delete []struct {
			Ctx    context.Context
			UserID string
			ID     string
		}
		GetByID []struct {
			Ctx    context.Context
			UserID string
			ID     string
		}
		List []struct {
			Ctx    context.Context
			UserID string
			Filter domain.EntryFilter
		}
		Update []struct {
			Ctx    context.Context
			UserID string
			ID     string
			Patch  domain.EntryPatch
		}
	}
	lockCreate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockUpdate  sync.RWMutex
}

func (mock *entryRepoMock) Create(ctx context.Context, entry *domain.JournalEntry) (*domain.JournalEntry, error) {
	if mock.CreateFunc == nil {
		panic("entryRepoMock.CreateFunc: method is nil but entryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Entry *domain.JournalEntry
	}{
		Ctx:   ctx,
		Entry: entry,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, entry)
}

func (mock *entryRepoMock) CreateCalls() []struct {
	Ctx   context.Context
	Entry *domain.JournalEntry
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *entryRepoMock) Delete(ctx context.Context, userID string, id string) error {
	if mock.DeleteFunc == nil {
		panic("entryRepoMock.DeleteFunc: method is nil but entryRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
		ID     string
	}{
		Ctx:    ctx,
		UserID: userID,
		ID:     id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *entryRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID string
	ID     string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *entryRepoMock) GetByID(ctx context.Context, userID string, id string) (*domain.JournalEntry, error) {
	if mock.GetByIDFunc == nil {
		panic("entryRepoMock.GetByIDFunc: method is nil but entryRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
		ID     string
	}{
		Ctx:    ctx,
		UserID: userID,
		ID:     id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *entryRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID string
	ID     string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *entryRepoMock) List(ctx context.Context, userID string, filter domain.EntryFilter) ([]domain.JournalEntry, error) {
	if mock.ListFunc == nil {
		panic("entryRepoMock.ListFunc: method is nil but entryRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
		Filter domain.EntryFilter
	}{
		Ctx:    ctx,
		UserID: userID,
		Filter: filter,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *entryRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID string
	Filter domain.EntryFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *entryRepoMock) Update(ctx context.Context, userID string, id string, patch domain.EntryPatch) (*domain.JournalEntry, error) {
	if mock.UpdateFunc == nil {
		panic("entryRepoMock.UpdateFunc: method is nil but entryRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
		ID     string
		Patch  domain.EntryPatch
	}{
		Ctx:    ctx,
		UserID: userID,
		ID:     id,
		Patch:  patch,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, id, patch)
}

func (mock *entryRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	UserID string
	ID     string
	Patch  domain.EntryPatch
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
