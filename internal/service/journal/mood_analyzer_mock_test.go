package journal

import (
	"context"
	"sync"
)

var _ moodAnalyzer = &moodAnalyzerMock{}

type moodAnalyzerMock struct {
	AnalyzeFunc func(ctx context.Context, content string) (string, error)

	calls struct {
		Analyze []struct {
			Ctx     context.Context
			Content string
		}
	}
	lockAnalyze sync.RWMutex
}

func (mock *moodAnalyzerMock) Analyze(ctx context.Context, content string) (string, error) {
	if mock.AnalyzeFunc == nil {
		panic("moodAnalyzerMock.AnalyzeFunc: method is nil but moodAnalyzer.Analyze was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Content string
	}{
		Ctx:     ctx,
		Content: content,
	}
	mock.lockAnalyze.Lock()
	mock.calls.Analyze = append(mock.calls.Analyze, callInfo)
	mock.lockAnalyze.Unlock()
	return mock.AnalyzeFunc(ctx, content)
}

func (mock *moodAnalyzerMock) AnalyzeCalls() []struct {
	Ctx     context.Context
	Content string
} {
	mock.lockAnalyze.RLock()
	calls := mock.calls.Analyze
	mock.lockAnalyze.RUnlock()
	return calls
}
