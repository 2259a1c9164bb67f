package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/rocketshoes-cart/internal/domain/entity"
)

// ProductResponse salida de un producto (formato del catálogo de la tienda).
type ProductResponse struct {
	ID    int             `json:"id"`
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
	Image string          `json:"image"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// StockResponse stock disponible de un producto.
type StockResponse struct {
	ID     int `json:"id"`
	Amount int `json:"amount"`
}

// ToProductResponse adapta la entidad al DTO.
func ToProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{ID: p.ID, Title: p.Name, Price: p.Price, Image: p.Image}
}

// ToEntity adapta la respuesta del catálogo remoto a la entidad.
func (r ProductResponse) ToEntity() *entity.Product {
	return &entity.Product{ID: r.ID, Name: r.Title, Price: r.Price, Image: r.Image}
}

// ToStockResponse adapta la entidad al DTO.
func ToStockResponse(s *entity.Stock) StockResponse {
	return StockResponse{ID: s.ID, Amount: s.Amount}
}

// ToEntity adapta la respuesta del catálogo remoto a la entidad.
func (r StockResponse) ToEntity() *entity.Stock {
	return &entity.Stock{ID: r.ID, Amount: r.Amount}
}
