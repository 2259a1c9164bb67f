package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rocketshoes-cart/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StorageMemory, cfg.Cart.Storage)
	assert.Equal(t, config.DefaultCartStorageKey, cfg.Cart.StorageKey)
	assert.Equal(t, "pt-BR", cfg.Cart.NoticeLocale)
	assert.Equal(t, 10*time.Second, cfg.Catalog.Timeout())
	assert.False(t, cfg.Catalog.Remote())
	assert.Equal(t, 5, cfg.Catalog.BreakerMaxFailures)
	assert.Equal(t, 30*time.Second, cfg.Catalog.BreakerOpen())
	assert.True(t, cfg.NeedsPostgres(), "sin catálogo remoto se usa el catálogo en PostgreSQL")
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CART_STORAGE", "Redis")
	t.Setenv("CART_STORAGE_KEY", "@Tienda:cart")
	t.Setenv("CATALOG_BASE_URL", "http://catalog:3333/")
	t.Setenv("CATALOG_TIMEOUT_SECONDS", "3")
	t.Setenv("REDIS_DB", "2")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.Equal(t, config.StorageRedis, cfg.Cart.Storage)
	assert.Equal(t, "@Tienda:cart", cfg.Cart.StorageKey)
	assert.Equal(t, "http://catalog:3333", cfg.Catalog.BaseURL, "se elimina la barra final")
	assert.Equal(t, 3*time.Second, cfg.Catalog.Timeout())
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.False(t, cfg.NeedsPostgres())
}

func TestLoad_StorageInvalido(t *testing.T) {
	t.Setenv("CART_STORAGE", "localstorage")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CART_STORAGE")
}

func TestLoad_BreakerInvalido(t *testing.T) {
	t.Setenv("CATALOG_BREAKER_MAX_FAILURES", "0")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CATALOG_BREAKER")
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", DBName: "shop", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/shop?sslmode=disable", c.DSN())
	assert.Equal(t, c.DSN(), c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
