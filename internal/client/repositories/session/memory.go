package session

import (
	"context"
	"sync"
)

// MemoryRepository is an in-memory Repository. It backs tests and serves
// as the runtime fallback when local storage cannot be opened, keeping the
// session alive for the life of the process only.
type MemoryRepository struct {
	mu         sync.Mutex
	credential string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Get(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.credential, nil
}

func (r *MemoryRepository) Save(ctx context.Context, credential string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.credential = credential
	return nil
}

func (r *MemoryRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.credential = ""
	return nil
}
