package repository

import (
	"context"

	"github.com/jhoicas/rocketshoes-cart/internal/domain/entity"
)

// StockRepository define el puerto para consultar el stock disponible por producto.
// Get devuelve (nil, nil) si no hay registro de stock.
type StockRepository interface {
	Get(ctx context.Context, productID int) (*entity.Stock, error)
}
