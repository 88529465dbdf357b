package site

import (
	"context"
	"sync"

	"github.com/KojoSelorm/labour-dept-ghana-site-sub000/internal/domain"
)

var _ contentRepo = &contentRepoMock{}

type contentRepoMock struct {
	ListFunc func(ctx context.Context) ([]domain.ContentEntry, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
	}
	lockList sync.RWMutex
}

func (mock *contentRepoMock) List(ctx context.Context) ([]domain.ContentEntry, error) {
	if mock.ListFunc == nil {
		panic("contentRepoMock.ListFunc: method is nil but contentRepo.List was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *contentRepoMock) ListCalls() []struct{ Ctx context.Context } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ articleRepo = &articleRepoMock{}

type articleRepoMock struct {
	ListFunc func(ctx context.Context) ([]domain.Article, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
	}
	lockList sync.RWMutex
}

func (mock *articleRepoMock) List(ctx context.Context) ([]domain.Article, error) {
	if mock.ListFunc == nil {
		panic("articleRepoMock.ListFunc: method is nil but articleRepo.List was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *articleRepoMock) ListCalls() []struct{ Ctx context.Context } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ testimonialRepo = &testimonialRepoMock{}

type testimonialRepoMock struct {
	ListFunc func(ctx context.Context) ([]domain.Testimonial, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
	}
	lockList sync.RWMutex
}

func (mock *testimonialRepoMock) List(ctx context.Context) ([]domain.Testimonial, error) {
	if mock.ListFunc == nil {
		panic("testimonialRepoMock.ListFunc: method is nil but testimonialRepo.List was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *testimonialRepoMock) ListCalls() []struct{ Ctx context.Context } {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ complaintRepo = &complaintRepoMock{}

type complaintRepoMock struct {
	CreateFunc func(ctx context.Context, c domain.Complaint) (domain.Complaint, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   domain.Complaint
		}
	}
	lockCreate sync.RWMutex
}

func (mock *complaintRepoMock) Create(ctx context.Context, c domain.Complaint) (domain.Complaint, error) {
	if mock.CreateFunc == nil {
		panic("complaintRepoMock.CreateFunc: method is nil but complaintRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Complaint
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *complaintRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   domain.Complaint
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

var _ messageRepo = &messageRepoMock{}

type messageRepoMock struct {
	CreateFunc func(ctx context.Context, m domain.ContactMessage) (domain.ContactMessage, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			M   domain.ContactMessage
		}
	}
	lockCreate sync.RWMutex
}

func (mock *messageRepoMock) Create(ctx context.Context, m domain.ContactMessage) (domain.ContactMessage, error) {
	if mock.CreateFunc == nil {
		panic("messageRepoMock.CreateFunc: method is nil but messageRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   domain.ContactMessage
	}{
		Ctx: ctx,
		M:   m,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *messageRepoMock) CreateCalls() []struct {
	Ctx context.Context
	M   domain.ContactMessage
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
