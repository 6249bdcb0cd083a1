package quote

import (
	"context"
	"sync"

	"cleaning-quote/internal/order"
)

// Store keeps the current revision of each session. Get returns nil and no
// error when the session does not exist.
type Store interface {
	GetQuote(ctx context.Context, id string) (*order.Order, error)
	SaveQuote(ctx context.Context, o order.Order) error
}

// Locker gates submissions. Acquire reports false when another submission
// for the same quote holds the lock.
type Locker interface {
	AcquireSubmitLock(ctx context.Context, id string) (bool, error)
	ReleaseSubmitLock(ctx context.Context, id string) error
	SubmitInFlight(ctx context.Context, id string) (bool, error)
}

// MemoryStore is an in-process Store and Locker.
type MemoryStore struct {
	mu     sync.Mutex
	quotes map[string]order.Order
	locks  map[string]bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		quotes: make(map[string]order.Order),
		locks:  make(map[string]bool),
	}
}

func (m *MemoryStore) GetQuote(_ context.Context, id string) (*order.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	o, ok := m.quotes[id]
	if !ok {
		return nil, nil
	}
	out := o.Clone()
	return &out, nil
}

func (m *MemoryStore) SaveQuote(_ context.Context, o order.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.quotes[o.ID] = o.Clone()
	return nil
}

func (m *MemoryStore) AcquireSubmitLock(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.locks[id] {
		return false, nil
	}
	m.locks[id] = true
	return true, nil
}

func (m *MemoryStore) ReleaseSubmitLock(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.locks, id)
	return nil
}

func (m *MemoryStore) SubmitInFlight(_ context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.locks[id], nil
}
