package entity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CartEntry es un producto del catálogo con la cantidad comprada.
// Los nombres JSON coinciden con el formato persistido del carrito.
type CartEntry struct {
	ID     int             `json:"id"`
	Name   string          `json:"title"`
	Image  string          `json:"image"`
	Price  decimal.Decimal `json:"price"`
	Amount int             `json:"amount"`
}

// NewCartEntry construye una entrada a partir de los datos del producto.
func NewCartEntry(p *Product, amount int) CartEntry {
	return CartEntry{
		ID:     p.ID,
		Name:   p.Name,
		Image:  p.Image,
		Price:  p.Price,
		Amount: amount,
	}
}

// Subtotal precio por cantidad.
func (e CartEntry) Subtotal() decimal.Decimal {
	return e.Price.Mul(decimal.NewFromInt(int64(e.Amount)))
}

// Equal compara por valor (Price con decimal.Equal).
func (e CartEntry) Equal(o CartEntry) bool {
	return e.ID == o.ID &&
		e.Name == o.Name &&
		e.Image == o.Image &&
		e.Price.Equal(o.Price) &&
		e.Amount == o.Amount
}

// Cart lista ordenada de entradas, única por ID, con Amount >= 1.
// Los métodos nunca modifican el receptor: devuelven una copia nueva.
type Cart []CartEntry

// Find devuelve la entrada con el ID indicado.
func (c Cart) Find(id int) (CartEntry, bool) {
	for _, e := range c {
		if e.ID == id {
			return e, true
		}
	}
	return CartEntry{}, false
}

// Contains indica si existe una entrada con el ID indicado.
func (c Cart) Contains(id int) bool {
	_, ok := c.Find(id)
	return ok
}

// Clone copia superficial; CartEntry no contiene referencias compartidas.
func (c Cart) Clone() Cart {
	out := make(Cart, len(c))
	copy(out, c)
	return out
}

// Append devuelve un carrito nuevo con la entrada al final.
func (c Cart) Append(e CartEntry) Cart {
	out := make(Cart, 0, len(c)+1)
	out = append(out, c...)
	return append(out, e)
}

// WithAmount reemplaza la entrada con ese ID por una copia con el nuevo Amount.
// Las demás entradas pasan sin cambios; si el ID no existe el resultado es igual al original.
func (c Cart) WithAmount(id, amount int) Cart {
	out := make(Cart, len(c))
	for i, e := range c {
		if e.ID == id {
			e.Amount = amount
		}
		out[i] = e
	}
	return out
}

// Without excluye todas las entradas con ese ID conservando el orden relativo.
func (c Cart) Without(id int) Cart {
	out := make(Cart, 0, len(c))
	for _, e := range c {
		if e.ID != id {
			out = append(out, e)
		}
	}
	return out
}

// Equal compara dos carritos por valor; nil y vacío son iguales.
func (c Cart) Equal(o Cart) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if !c[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// Normalize descarta entradas con Amount <= 0 e IDs repetidos (gana la primera).
func (c Cart) Normalize() Cart {
	seen := make(map[int]struct{}, len(c))
	out := make(Cart, 0, len(c))
	for _, e := range c {
		if e.Amount <= 0 {
			continue
		}
		if _, dup := seen[e.ID]; dup {
			continue
		}
		seen[e.ID] = struct{}{}
		out = append(out, e)
	}
	return out
}

// Subtotal suma de precio por cantidad de todas las entradas.
func (c Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, e := range c {
		total = total.Add(e.Subtotal())
	}
	return total
}

// MarshalJSON serializa un carrito vacío como [] y no como null.
func (c Cart) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]CartEntry(c))
}
