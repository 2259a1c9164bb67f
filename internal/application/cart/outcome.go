package cart

import (
	"github.com/jhoicas/rocketshoes-cart/internal/domain/entity"
	"github.com/jhoicas/rocketshoes-cart/pkg/i18n"
)

// Operation operación del carrito que produjo un resultado.
type Operation string

const (
	OpAdd          Operation = "add_product"
	OpRemove       Operation = "remove_product"
	OpUpdateAmount Operation = "update_product_amount"
)

// OutcomeKind clasifica el resultado de una operación.
type OutcomeKind int

const (
	Committed OutcomeKind = iota
	NoOp
	RejectedByStock
	RejectedByLookupFailure
	RejectedNotFound
)

func (k OutcomeKind) String() string {
	switch k {
	case Committed:
		return "committed"
	case NoOp:
		return "noop"
	case RejectedByStock:
		return "rejected_by_stock"
	case RejectedByLookupFailure:
		return "rejected_by_lookup_failure"
	case RejectedNotFound:
		return "rejected_not_found"
	default:
		return "unknown"
	}
}

// Outcome resultado de una operación del Store.
// Err conserva la causa para logs; Notice es el aviso emitido (nil si no hubo).
// Cart es una copia del carrito al terminar la operación, sin mutaciones posteriores.
type Outcome struct {
	Kind      OutcomeKind
	Op        Operation
	ProductID int
	Err       error
	Notice    *Notice
	Cart      entity.Cart
}

// Accepted true si la operación no fue rechazada.
func (o Outcome) Accepted() bool {
	return o.Kind == Committed || o.Kind == NoOp
}

// noticeKey aviso que corresponde al resultado; false si no se notifica.
func (o Outcome) noticeKey() (i18n.Key, bool) {
	switch o.Kind {
	case RejectedByStock:
		return i18n.KeyStockUnavailable, true
	case RejectedNotFound:
		return i18n.KeyRemoveFailed, true
	case RejectedByLookupFailure:
		switch o.Op {
		case OpAdd:
			return i18n.KeyAddFailed, true
		case OpRemove:
			return i18n.KeyRemoveFailed, true
		default:
			return i18n.KeyUpdateFailed, true
		}
	}
	return "", false
}
