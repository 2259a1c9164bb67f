package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/rocketshoes-cart/internal/application/cart"
	"github.com/jhoicas/rocketshoes-cart/internal/application/dto"
	"github.com/jhoicas/rocketshoes-cart/internal/domain"
)

// NoticeFeed últimos avisos emitidos por el carrito. Lo implementa *notice.Recorder.
type NoticeFeed interface {
	Notices() []cart.Notice
}

// CartHandler maneja las operaciones sobre el carrito.
type CartHandler struct {
	store   *cart.Store
	notices NoticeFeed
}

// NewCartHandler construye el handler. notices puede ser nil.
func NewCartHandler(store *cart.Store, notices NoticeFeed) *CartHandler {
	return &CartHandler{store: store, notices: notices}
}

// Get godoc
// @Summary      Carrito actual
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	return c.JSON(dto.ToCartResponse(h.store.Cart()))
}

// Notices godoc
// @Summary      Últimos avisos del carrito
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.NoticeListResponse
// @Router       /api/cart/notices [get]
func (h *CartHandler) Notices(c *fiber.Ctx) error {
	out := dto.NoticeListResponse{Items: []dto.NoticeResponse{}}
	if h.notices != nil {
		for _, n := range h.notices.Notices() {
			out.Items = append(out.Items, dto.ToNoticeResponse(n.Key, n.Message, string(n.Op), n.ProductID))
		}
	}
	return c.JSON(out)
}

// AddProduct godoc
// @Summary      Agregar una unidad de un producto
// @Tags         cart
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.CartMutationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/cart/items/{id} [post]
func (h *CartHandler) AddProduct(c *fiber.Ctx) error {
	id, ok, err := paramInt(c)
	if !ok {
		return err
	}
	return h.respond(c, h.store.AddProduct(c.UserContext(), id))
}

// RemoveProduct godoc
// @Summary      Quitar un producto del carrito
// @Tags         cart
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.CartMutationResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/cart/items/{id} [delete]
func (h *CartHandler) RemoveProduct(c *fiber.Ctx) error {
	id, ok, err := paramInt(c)
	if !ok {
		return err
	}
	return h.respond(c, h.store.RemoveProduct(c.UserContext(), id))
}

// UpdateAmount godoc
// @Summary      Fijar la cantidad de un producto
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        id    path  int                      true  "ID del producto"
// @Param        body  body  dto.UpdateAmountRequest  true  "Cantidad deseada"
// @Success      200   {object}  dto.CartMutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/cart/items/{id} [put]
func (h *CartHandler) UpdateAmount(c *fiber.Ctx) error {
	id, ok, err := paramInt(c)
	if !ok {
		return err
	}
	var in dto.UpdateAmountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.respond(c, h.store.UpdateProductAmount(c.UserContext(), cart.UpdateProductAmount{ProductID: id, Amount: in.Amount}))
}

// respond escribe el carrito con que terminó la operación si fue aceptada; si no, el aviso como error.
func (h *CartHandler) respond(c *fiber.Ctx, out cart.Outcome) error {
	if out.Accepted() {
		return c.JSON(dto.CartMutationResponse{
			Outcome: out.Kind.String(),
			Cart:    dto.ToCartResponse(out.Cart),
		})
	}

	status, code := fiber.StatusBadGateway, "LOOKUP_FAILED"
	switch out.Kind {
	case cart.RejectedByStock:
		status, code = fiber.StatusConflict, "OUT_OF_STOCK"
	case cart.RejectedNotFound:
		status, code = fiber.StatusNotFound, "NOT_IN_CART"
	case cart.RejectedByLookupFailure:
		switch {
		case errors.Is(out.Err, domain.ErrNotFound):
			status, code = fiber.StatusNotFound, "PRODUCT_NOT_FOUND"
		case errors.Is(out.Err, domain.ErrInvalidInput):
			status, code = fiber.StatusBadRequest, "INVALID_PRODUCT"
		}
	}
	msg := ""
	if out.Notice != nil {
		msg = out.Notice.Message
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}
