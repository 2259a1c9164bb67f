package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rocketshoes-cart/internal/domain/entity"
)

func e(id, amount int, price string) entity.CartEntry {
	return entity.CartEntry{ID: id, Name: "tenis", Image: "img.jpg", Price: decimal.RequireFromString(price), Amount: amount}
}

func TestCart_WithAmountNoModificaOriginal(t *testing.T) {
	c := entity.Cart{e(1, 1, "10"), e(2, 1, "20")}

	next := c.WithAmount(2, 5)

	assert.Equal(t, 1, c[1].Amount)
	assert.Equal(t, 5, next[1].Amount)
	assert.True(t, next[0].Equal(c[0]))
}

func TestCart_WithAmountIDAusente(t *testing.T) {
	c := entity.Cart{e(1, 1, "10")}
	assert.True(t, c.WithAmount(9, 3).Equal(c))
}

func TestCart_Without(t *testing.T) {
	c := entity.Cart{e(1, 1, "10"), e(2, 1, "20"), e(3, 1, "30")}

	got := c.Without(2)

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
	assert.Len(t, c, 3)
}

func TestCart_AppendNoComparteArreglo(t *testing.T) {
	base := make(entity.Cart, 1, 4)
	base[0] = e(1, 1, "10")

	a := base.Append(e(2, 1, "20"))
	b := base.Append(e(3, 1, "30"))

	assert.Equal(t, 2, a[1].ID)
	assert.Equal(t, 3, b[1].ID)
}

func TestCart_EqualPorValor(t *testing.T) {
	a := entity.Cart{e(1, 2, "10.0")}
	b := entity.Cart{e(1, 2, "10")}
	assert.True(t, a.Equal(b), "10.0 y 10 son el mismo precio")

	assert.True(t, entity.Cart(nil).Equal(entity.Cart{}))
	assert.False(t, a.Equal(entity.Cart{e(1, 3, "10")}))
	assert.False(t, a.Equal(entity.Cart{e(1, 2, "10"), e(2, 1, "10")}))
}

func TestCart_Normalize(t *testing.T) {
	c := entity.Cart{e(1, 2, "10"), e(2, 0, "10"), e(3, -1, "10"), e(1, 7, "10"), e(4, 1, "10")}

	got := c.Normalize()

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 2, got[0].Amount, "gana la primera aparición")
	assert.Equal(t, 4, got[1].ID)
}

func TestCart_Subtotal(t *testing.T) {
	c := entity.Cart{e(1, 2, "179.90"), e(2, 1, "139.90")}
	assert.True(t, decimal.RequireFromString("499.70").Equal(c.Subtotal()))
	assert.True(t, decimal.Zero.Equal(entity.Cart{}.Subtotal()))
}

func TestCart_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(entity.Cart(nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	data, err = json.Marshal(entity.Cart{e(5, 1, "10")})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":5,"title":"tenis","image":"img.jpg","price":"10","amount":1}]`, string(data))

	var back entity.Cart
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Equal(entity.Cart{e(5, 1, "10")}))
}

func TestCart_UnmarshalPrecioNumerico(t *testing.T) {
	var c entity.Cart
	require.NoError(t, json.Unmarshal([]byte(`[{"id":1,"title":"Tênis","image":"x","price":139.9,"amount":2}]`), &c))
	require.Len(t, c, 1)
	assert.True(t, decimal.RequireFromString("139.9").Equal(c[0].Price))
}
