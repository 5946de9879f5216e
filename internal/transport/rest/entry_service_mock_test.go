package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
	"github.com/heartmarshall/moodjournal-backend/internal/service/journal"
)

var _ entryService = &entryServiceMock{}

type entryServiceMock struct {
	ListEntriesFunc func(ctx context.Context, input journal.ListInput) ([]domain.JournalEntry, error)
	GetEntryFunc    func(ctx context.Context, id string) (*domain.JournalEntry, error)
	CreateEntryFunc func(ctx context.Context, input journal.CreateEntryInput) (*domain.JournalEntry, error)
	UpdateEntryFunc func(ctx context.Context, input journal.UpdateEntryInput) (*domain.JournalEntry, error)
	DeleteEntryFunc func(ctx context.Context, id string) error

	calls struct {
		ListEntries []struct {
			Ctx   context.Context
			Input journal.ListInput
		}
		GetEntry []struct {
			Ctx context.Context
			ID  string
		}
		CreateEntry []struct {
			Ctx   context.Context
			Input journal.CreateEntryInput
		}
		UpdateEntry []struct {
			Ctx   context.Context
			Input journal.UpdateEntryInput
		}
		DeleteEntry []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockListEntries sync.RWMutex
	lockGetEntry    sync.RWMutex
	lockCreateEntry sync.RWMutex
	lockUpdateEntry sync.RWMutex
	lockDeleteEntry sync.RWMutex
}

func (mock *entryServiceMock) ListEntries(ctx context.Context, input journal.ListInput) ([]domain.JournalEntry, error) {
	if mock.ListEntriesFunc == nil {
		panic("entryServiceMock.ListEntriesFunc: method is nil but entryService.ListEntries was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input journal.ListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockListEntries.Lock()
	mock.calls.ListEntries = append(mock.calls.ListEntries, callInfo)
	mock.lockListEntries.Unlock()
	return mock.ListEntriesFunc(ctx, input)
}

func (mock *entryServiceMock) ListEntriesCalls() []struct {
	Ctx   context.Context
	Input journal.ListInput
} {
	mock.lockListEntries.RLock()
	calls := mock.calls.ListEntries
	mock.lockListEntries.RUnlock()
	return calls
}

func (mock *entryServiceMock) GetEntry(ctx context.Context, id string) (*domain.JournalEntry, error) {
	if mock.GetEntryFunc == nil {
		panic("entryServiceMock.GetEntryFunc: method is nil but entryService.GetEntry was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetEntry.Lock()
	mock.calls.GetEntry = append(mock.calls.GetEntry, callInfo)
	mock.lockGetEntry.Unlock()
	return mock.GetEntryFunc(ctx, id)
}

func (mock *entryServiceMock) GetEntryCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockGetEntry.RLock()
	calls := mock.calls.GetEntry
	mock.lockGetEntry.RUnlock()
	return calls
}

func (mock *entryServiceMock) CreateEntry(ctx context.Context, input journal.CreateEntryInput) (*domain.JournalEntry, error) {
	if mock.CreateEntryFunc == nil {
		panic("entryServiceMock.CreateEntryFunc: method is nil but entryService.CreateEntry was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input journal.CreateEntryInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreateEntry.Lock()
	mock.calls.CreateEntry = append(mock.calls.CreateEntry, callInfo)
	mock.lockCreateEntry.Unlock()
	return mock.CreateEntryFunc(ctx, input)
}

func (mock *entryServiceMock) CreateEntryCalls() []struct {
	Ctx   context.Context
	Input journal.CreateEntryInput
} {
	mock.lockCreateEntry.RLock()
	calls := mock.calls.CreateEntry
	mock.lockCreateEntry.RUnlock()
	return calls
}

func (mock *entryServiceMock) UpdateEntry(ctx context.Context, input journal.UpdateEntryInput) (*domain.JournalEntry, error) {
	if mock.UpdateEntryFunc == nil {
		panic("entryServiceMock.UpdateEntryFunc: method is nil but entryService.UpdateEntry was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input journal.UpdateEntryInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateEntry.Lock()
	mock.calls.UpdateEntry = append(mock.calls.UpdateEntry, callInfo)
	mock.lockUpdateEntry.Unlock()
	return mock.UpdateEntryFunc(ctx, input)
}

func (mock *entryServiceMock) UpdateEntryCalls() []struct {
	Ctx   context.Context
	Input journal.UpdateEntryInput
} {
	mock.lockUpdateEntry.RLock()
	calls := mock.calls.UpdateEntry
	mock.lockUpdateEntry.RUnlock()
	return calls
}

func (mock *entryServiceMock) DeleteEntry(ctx context.Context, id string) error {
	if mock.DeleteEntryFunc == nil {
		panic("entryServiceMock.DeleteEntryFunc: method is nil but entryService.DeleteEntry was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDeleteEntry.Lock()
	mock.calls.DeleteEntry = append(mock.calls.DeleteEntry, callInfo)
	mock.lockDeleteEntry.Unlock()
	return mock.DeleteEntryFunc(ctx, id)
}

func (mock *entryServiceMock) DeleteEntryCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDeleteEntry.RLock()
	calls := mock.calls.DeleteEntry
	mock.lockDeleteEntry.RUnlock()
	return calls
}
