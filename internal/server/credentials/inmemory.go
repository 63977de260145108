package credentials

import (
	"context"
	"sync"
)

// InMemoryRepository keeps credentials in a map guarded by a reader-writer
// lock, so queries never observe a mid-mutation state.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{users: make(map[string]string)}
}

func (r *InMemoryRepository) Insert(ctx context.Context, userName, secret string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[userName] = secret
	return nil
}

func (r *InMemoryRepository) Query(ctx context.Context, userName string) ([]Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// A map key holds at most one record, so the result is empty or single.
	rows := []Credential{}
	if secret, ok := r.users[userName]; ok {
		rows = append(rows, Credential{UserName: userName, Secret: secret})
	}
	return rows, nil
}

func (r *InMemoryRepository) CreateIfAbsent(ctx context.Context, userName, secret string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[userName]; ok {
		return false, nil
	}
	r.users[userName] = secret
	return true, nil
}
