package viewer

import (
	"context"
	"sync"

	"github.com/heartmarshall/flashdeck/internal/domain"
)

var _ deckSource = &deckSourceMock{}

type deckSourceMock struct {
	FetchFunc func(ctx context.Context, key domain.DeckKey) ([]domain.Card, error)
	ListFunc  func(ctx context.Context) ([]domain.DeckOption, error)

	calls struct {
		Fetch []struct {
			Ctx context.Context
			Key domain.DeckKey
		}
		List []struct {
			Ctx context.Context
		}
	}
	lockFetch sync.RWMutex
	lockList  sync.RWMutex
}

func (mock *deckSourceMock) Fetch(ctx context.Context, key domain.DeckKey) ([]domain.Card, error) {
	if mock.FetchFunc == nil {
		panic("deckSourceMock.FetchFunc: method is nil but deckSource.Fetch was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Key domain.DeckKey
	}{Ctx: ctx, Key: key}
	mock.lockFetch.Lock()
	mock.calls.Fetch = append(mock.calls.Fetch, callInfo)
	mock.lockFetch.Unlock()
	return mock.FetchFunc(ctx, key)
}

func (mock *deckSourceMock) FetchCalls() []struct {
	Ctx context.Context
	Key domain.DeckKey
} {
	mock.lockFetch.RLock()
	calls := mock.calls.Fetch
	mock.lockFetch.RUnlock()
	return calls
}

func (mock *deckSourceMock) List(ctx context.Context) ([]domain.DeckOption, error) {
	if mock.ListFunc == nil {
		panic("deckSourceMock.ListFunc: method is nil but deckSource.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *deckSourceMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
