package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/rocketshoes-cart/internal/domain/repository"
)

var _ repository.CartStorage = (*CartStorage)(nil)

// CartStorage almacén clave-valor en memoria del proceso (desarrollo y tests).
// Se pierde al reiniciar.
type CartStorage struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewCartStorage constructor.
func NewCartStorage() *CartStorage {
	return &CartStorage{data: make(map[string]string)}
}

// Get devuelve el valor guardado bajo key.
func (s *CartStorage) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

// Set guarda value bajo key.
func (s *CartStorage) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}
