package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rocketshoes-cart/pkg/logger"
)

func TestNewWithWriter_FiltraPorNivel(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf, "WARN")

	l.Info().Msg("descartado")
	l.Warn().Msg("visible")

	assert.NotContains(t, buf.String(), "descartado")
	assert.Contains(t, buf.String(), "visible")
}

func TestNewWithWriter_NivelDesconocidoUsaInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf, "verbose")

	l.Debug().Msg("debug")
	l.Info().Msg("info")

	assert.NotContains(t, buf.String(), `"message":"debug"`)
	assert.Contains(t, buf.String(), `"message":"info"`)
}

func TestComponent_AgregaCampo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf, "info").Component("cart")

	l.Info().Int("product_id", 3).Msg("operación de carrito")

	var ev map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &ev))
	assert.Equal(t, "cart", ev["component"])
	assert.EqualValues(t, 3, ev["product_id"])
}
