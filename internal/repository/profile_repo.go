package repository

import (
	"context"
	"sync"
)

// ProfileRepository guarda el perfil serializado bajo una clave fija.
// Get devuelve nil, nil cuando la clave no existe.
type ProfileRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
}

type MemoryProfileRepository struct {
	mu    sync.RWMutex
	items map[string][]byte
}

func NewMemoryProfileRepository() *MemoryProfileRepository {
	return &MemoryProfileRepository{items: make(map[string][]byte)}
}

func (r *MemoryProfileRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	data, ok := r.items[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

func (r *MemoryProfileRepository) Put(_ context.Context, key string, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[key] = append([]byte(nil), data...)
	return nil
}
