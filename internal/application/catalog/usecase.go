package catalog

import (
	"context"
	"fmt"

	"github.com/jhoicas/rocketshoes-cart/internal/application/cart"
	"github.com/jhoicas/rocketshoes-cart/internal/domain"
	"github.com/jhoicas/rocketshoes-cart/internal/domain/entity"
	"github.com/jhoicas/rocketshoes-cart/internal/domain/repository"
)

// El catálogo local puede usarse directamente como gateway del carrito.
var _ cart.CatalogGateway = (*UseCase)(nil)

// UseCase consultas de stock y productos del catálogo.
type UseCase struct {
	products repository.ProductRepository
	stock    repository.StockRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(products repository.ProductRepository, stock repository.StockRepository) *UseCase {
	return &UseCase{products: products, stock: stock}
}

// GetStock devuelve el stock disponible del producto.
func (uc *UseCase) GetStock(ctx context.Context, productID int) (*entity.Stock, error) {
	if productID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	s, err := uc.stock.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("stock %d: %w", productID, domain.ErrNotFound)
	}
	return s, nil
}

// GetProduct devuelve un producto por ID.
func (uc *UseCase) GetProduct(ctx context.Context, productID int) (*entity.Product, error) {
	if productID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("producto %d: %w", productID, domain.ErrNotFound)
	}
	return p, nil
}

// ListProducts lista productos con paginación; limit se acota a [1, 100].
func (uc *UseCase) ListProducts(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.products.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []*entity.Product{}
	}
	return list, nil
}
