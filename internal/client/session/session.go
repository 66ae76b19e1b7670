// Package session holds the console's authentication token in a durable
// key/value slot. A stored token means the console is authenticated; the
// token is trusted until the remote API rejects it.
package session

import (
	"context"
	"sync"
)

// Slot keys.
const (
	KeyToken = "token"
	KeyEmail = "email"
)

// Store is the single owner of the session token.
//
// Read reports ok=false when no token is stored. Clear is idempotent.
type Store interface {
	Read(ctx context.Context) (token string, ok bool, err error)
	Identity(ctx context.Context) (string, error)
	Write(ctx context.Context, token, email string) error
	Clear(ctx context.Context) error
}

// MemoryStore keeps the session in process memory. It does not survive a
// restart and is meant for tests and throwaway runs.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
	email string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Read(_ context.Context) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, m.token != "", nil
}

func (m *MemoryStore) Identity(_ context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.email, nil
}

func (m *MemoryStore) Write(_ context.Context, token, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token, m.email = token, email
	return nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token, m.email = "", ""
	return nil
}
