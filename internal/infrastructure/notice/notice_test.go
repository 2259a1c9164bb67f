package notice_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rocketshoes-cart/internal/application/cart"
	"github.com/jhoicas/rocketshoes-cart/internal/infrastructure/notice"
	"github.com/jhoicas/rocketshoes-cart/pkg/i18n"
	"github.com/jhoicas/rocketshoes-cart/pkg/logger"
)

func TestRecorder_GuardaYReenvia(t *testing.T) {
	var buf bytes.Buffer
	next := notice.NewLogNotifier(logger.NewWithWriter(&buf, "info"))
	rec := notice.NewRecorder(next)

	_, ok := rec.Last()
	assert.False(t, ok)

	n := cart.Notice{Key: i18n.KeyAddFailed, Message: "Erro na adição do produto", Op: cart.OpAdd, ProductID: 7}
	rec.Notify(context.Background(), n)

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, n, last)
	assert.Len(t, rec.Notices(), 1)
	assert.Contains(t, buf.String(), `"notice":"notice.add_failed"`)
	assert.Contains(t, buf.String(), `"product_id":7`)
	assert.Contains(t, buf.String(), `"level":"warn"`)

	rec.Reset()
	assert.Empty(t, rec.Notices())
}

func TestRecorder_ConservaSoloLosUltimos(t *testing.T) {
	rec := notice.NewRecorderWithCapacity(nil, 3)
	for id := 1; id <= 5; id++ {
		rec.Notify(context.Background(), cart.Notice{Key: i18n.KeyRemoveFailed, Op: cart.OpRemove, ProductID: id})
	}

	got := rec.Notices()
	require.Len(t, got, 3)
	assert.Equal(t, 3, got[0].ProductID)
	assert.Equal(t, 5, got[2].ProductID)

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, 5, last.ProductID)
}

func TestRecorder_CapacidadInvalidaUsaLaPorDefecto(t *testing.T) {
	rec := notice.NewRecorderWithCapacity(nil, 0)
	for id := 1; id <= notice.DefaultCapacity+1; id++ {
		rec.Notify(context.Background(), cart.Notice{ProductID: id})
	}
	got := rec.Notices()
	require.Len(t, got, notice.DefaultCapacity)
	assert.Equal(t, 2, got[0].ProductID)
}
