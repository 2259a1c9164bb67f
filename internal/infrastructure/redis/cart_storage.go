package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/rocketshoes-cart/internal/domain/repository"
	"github.com/jhoicas/rocketshoes-cart/pkg/config"
)

var _ repository.CartStorage = (*CartStorage)(nil)

const keyPrefix = "cart:storage:"

// CartStorage almacén clave-valor del carrito sobre Redis (sin expiración).
type CartStorage struct {
	client redis.UniversalClient
}

// NewCartStorage construye el adaptador.
func NewCartStorage(client redis.UniversalClient) *CartStorage {
	return &CartStorage{client: client}
}

// NewClient abre la conexión y verifica con PING.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// Get devuelve el valor guardado bajo key.
func (s *CartStorage) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get: %w", err)
	}
	return v, true, nil
}

// Set guarda value bajo key.
func (s *CartStorage) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, keyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
