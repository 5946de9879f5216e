package seeder

import (
	"context"
	"sync"

	"github.com/heartmarshall/moodjournal-backend/internal/domain"
)

var _ EntryBulkRepo = &EntryBulkRepoMock{}

type EntryBulkRepoMock struct {
	BulkCreateFunc func(ctx context.Context, entries []domain.JournalEntry) (int, error)

	calls struct {
		BulkCreate []struct {
			Ctx     context.Context
			Entries []domain.JournalEntry
		}
	}
	lockBulkCreate sync.RWMutex
}

func (mock *EntryBulkRepoMock) BulkCreate(ctx context.Context, entries []domain.JournalEntry) (int, error) {
	if mock.BulkCreateFunc == nil {
		panic("EntryBulkRepoMock.BulkCreateFunc: method is nil but EntryBulkRepo.BulkCreate was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Entries []domain.JournalEntry
	}{
		Ctx:     ctx,
		Entries: entries,
	}
	mock.lockBulkCreate.Lock()
	mock.calls.BulkCreate = append(mock.calls.BulkCreate, callInfo)
	mock.lockBulkCreate.Unlock()
	return mock.BulkCreateFunc(ctx, entries)
}

func (mock *EntryBulkRepoMock) BulkCreateCalls() []struct {
	Ctx     context.Context
	Entries []domain.JournalEntry
} {
	mock.lockBulkCreate.RLock()
	calls := mock.calls.BulkCreate
	mock.lockBulkCreate.RUnlock()
	return calls
}
