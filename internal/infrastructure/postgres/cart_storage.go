package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/rocketshoes-cart/internal/domain/repository"
)

var _ repository.CartStorage = (*CartStorage)(nil)

// CartStorage almacén clave-valor del carrito en la tabla cart_storage.
type CartStorage struct {
	q Querier
}

// NewCartStorage construye el adaptador. Pasar pool o tx (Querier).
func NewCartStorage(q Querier) *CartStorage {
	return &CartStorage{q: q}
}

// Get devuelve el valor guardado bajo key.
func (s *CartStorage) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := s.q.QueryRow(ctx, `SELECT value FROM cart_storage WHERE key = $1`, key).Scan(&v)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get cart storage: %w", err)
	}
	return v, true, nil
}

// Set inserta o reemplaza el valor (upsert por key).
func (s *CartStorage) Set(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO cart_storage (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	if _, err := s.q.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("upsert cart storage: %w", err)
	}
	return nil
}
