package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/rocketshoes-cart/internal/domain/entity"
	"github.com/jhoicas/rocketshoes-cart/pkg/i18n"
)

// UpdateAmountRequest entrada para fijar la cantidad de un producto del carrito.
type UpdateAmountRequest struct {
	Amount int `json:"amount"`
}

// CartResponse carrito actual con resumen.
type CartResponse struct {
	Items      entity.Cart     `json:"items"`
	ItemsCount int             `json:"items_count"` // productos distintos
	Subtotal   decimal.Decimal `json:"subtotal"`
}

// CartMutationResponse resultado de una operación aceptada.
type CartMutationResponse struct {
	Outcome string       `json:"outcome"`
	Cart    CartResponse `json:"cart"`
}

// ToCartResponse construye la respuesta a partir del carrito.
func ToCartResponse(c entity.Cart) CartResponse {
	return CartResponse{
		Items:      c,
		ItemsCount: len(c),
		Subtotal:   c.Subtotal(),
	}
}

// NoticeResponse aviso emitido por una operación rechazada.
type NoticeResponse struct {
	Key       string `json:"key"`
	Message   string `json:"message"`
	Op        string `json:"op"`
	ProductID int    `json:"product_id"`
}

// NoticeListResponse avisos recientes, del más antiguo al más nuevo.
type NoticeListResponse struct {
	Items []NoticeResponse `json:"items"`
}

// ToNoticeResponse construye el DTO de un aviso.
func ToNoticeResponse(key i18n.Key, message, op string, productID int) NoticeResponse {
	return NoticeResponse{Key: string(key), Message: message, Op: op, ProductID: productID}
}
