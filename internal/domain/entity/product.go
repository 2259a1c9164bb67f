package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo de la tienda.
type Product struct {
	ID    int
	Name  string
	Image string
	Price decimal.Decimal
}
