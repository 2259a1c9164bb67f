package postgres_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rocketshoes-cart/internal/infrastructure/postgres"
)

// ── Helpers de test ──────────────────────────────────────────────────────────

// fakeQuerier guarda cart_storage en un mapa y registra las sentencias ejecutadas.
type fakeQuerier struct {
	values map[string]string
	execs  []string
	err    error
}

func newFakeQuerier() *fakeQuerier {
	return &fakeQuerier{values: map[string]string{}}
}

func (f *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	if f.err != nil {
		return pgconn.CommandTag{}, f.err
	}
	if strings.Contains(sql, "INSERT INTO cart_storage") {
		f.values[args[0].(string)] = args[1].(string)
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (f *fakeQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("no soportado")
}

func (f *fakeQuerier) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	if f.err != nil {
		return fakeRow{err: f.err}
	}
	v, ok := f.values[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{value: v}
}

type fakeRow struct {
	value string
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*string) = r.value
	return nil
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestCartStorage_GetClaveAusente(t *testing.T) {
	s := postgres.NewCartStorage(newFakeQuerier())

	v, found, err := s.Get(context.Background(), "@RocketShoes:cart")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, v)
}

func TestCartStorage_SetYGet(t *testing.T) {
	q := newFakeQuerier()
	s := postgres.NewCartStorage(q)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "@RocketShoes:cart", `[{"id":1}]`))
	require.NoError(t, s.Set(ctx, "@RocketShoes:cart", `[]`))

	v, found, err := s.Get(ctx, "@RocketShoes:cart")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[]`, v)
	require.Len(t, q.execs, 2)
	assert.Contains(t, q.execs[0], "ON CONFLICT (key)")
}

func TestCartStorage_PropagaErrores(t *testing.T) {
	q := newFakeQuerier()
	q.err = errors.New("conexión cerrada")
	s := postgres.NewCartStorage(q)

	_, _, err := s.Get(context.Background(), "k")
	require.Error(t, err)
	assert.ErrorIs(t, err, q.err)

	err = s.Set(context.Background(), "k", "v")
	require.Error(t, err)
	assert.ErrorIs(t, err, q.err)
}

func TestEnsureSchema(t *testing.T) {
	q := newFakeQuerier()
	require.NoError(t, postgres.EnsureSchema(context.Background(), q))

	require.Len(t, q.execs, 1)
	for _, table := range []string{"products", "stock", "cart_storage"} {
		assert.Contains(t, q.execs[0], "CREATE TABLE IF NOT EXISTS "+table)
	}
}
