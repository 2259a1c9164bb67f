package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/rocketshoes-cart/internal/application/catalog"
	"github.com/jhoicas/rocketshoes-cart/internal/application/dto"
)

// CatalogHandler expone el catálogo local (productos y stock) con el formato que consume el carrito.
type CatalogHandler struct {
	uc *catalog.UseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *catalog.UseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// GetStock godoc
// @Summary      Stock disponible de un producto
// @Tags         catalog
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.StockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /stock/{id} [get]
func (h *CatalogHandler) GetStock(c *fiber.Ctx) error {
	id, ok, err := paramID(c)
	if !ok {
		return err
	}
	s, err := h.uc.GetStock(c.UserContext(), id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.ToStockResponse(s))
}

// GetProduct godoc
// @Summary      Obtener producto por ID
// @Tags         catalog
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [get]
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id, ok, err := paramID(c)
	if !ok {
		return err
	}
	p, err := h.uc.GetProduct(c.UserContext(), id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.ToProductResponse(p))
}

// ListProducts godoc
// @Summary      Listar productos
// @Tags         catalog
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.ProductListResponse
// @Router       /products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	list, err := h.uc.ListProducts(c.UserContext(), limit, offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	out := dto.ProductListResponse{
		Items: make([]dto.ProductResponse, 0, len(list)),
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}
	for _, p := range list {
		out.Items = append(out.Items, dto.ToProductResponse(p))
	}
	return c.JSON(out)
}
