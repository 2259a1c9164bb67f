package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rocketshoes-cart/internal/infrastructure/memory"
)

func TestCartStorage_GetSetSobrescribe(t *testing.T) {
	s := memory.NewCartStorage()
	ctx := context.Background()

	_, found, err := s.Get(ctx, "@RocketShoes:cart")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Set(ctx, "@RocketShoes:cart", `[{"id":1,"amount":1}]`))
	require.NoError(t, s.Set(ctx, "@RocketShoes:cart", `[]`))

	v, found, err := s.Get(ctx, "@RocketShoes:cart")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", v)
}
