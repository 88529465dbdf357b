package analytics

import (
	"context"
	"sync"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/domain"
)

var _ complaintLister = &complaintListerMock{}

type complaintListerMock struct {
	ListFunc func(ctx context.Context) ([]domain.Complaint, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
	}
	lockList sync.RWMutex
}

func (mock *complaintListerMock) List(ctx context.Context) ([]domain.Complaint, error) {
	if mock.ListFunc == nil {
		panic("complaintListerMock.ListFunc: method is nil but complaintLister.List was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *complaintListerMock) ListCalls() []struct{ Ctx context.Context } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ messageLister = &messageListerMock{}

type messageListerMock struct {
	ListFunc func(ctx context.Context) ([]domain.ContactMessage, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
	}
	lockList sync.RWMutex
}

func (mock *messageListerMock) List(ctx context.Context) ([]domain.ContactMessage, error) {
	if mock.ListFunc == nil {
		panic("messageListerMock.ListFunc: method is nil but messageLister.List was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *messageListerMock) ListCalls() []struct{ Ctx context.Context } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ modeReporter = &modeReporterMock{}

type modeReporterMock struct {
	IsFallbackModeFunc func() bool
}

func (mock *modeReporterMock) IsFallbackMode() bool {
	if mock.IsFallbackModeFunc == nil {
		panic("modeReporterMock.IsFallbackModeFunc: method is nil but modeReporter.IsFallbackMode was just called")
	}
	return mock.IsFallbackModeFunc()
}
