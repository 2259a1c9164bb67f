package cart

import (
	"context"

	"github.com/jhoicas/rocketshoes-cart/internal/domain/entity"
	"github.com/jhoicas/rocketshoes-cart/pkg/i18n"
)

// CatalogGateway puerto de salida hacia el servicio de stock y productos.
// Con error nil el resultado nunca es nil.
type CatalogGateway interface {
	GetStock(ctx context.Context, productID int) (*entity.Stock, error)
	GetProduct(ctx context.Context, productID int) (*entity.Product, error)
}

// Notice aviso corto para el usuario.
type Notice struct {
	Key       i18n.Key
	Message   string
	Op        Operation
	ProductID int
}

// Notifier recibe los avisos de rechazo; fire-and-forget.
type Notifier interface {
	Notify(ctx context.Context, n Notice)
}

// OutcomeObserver recibe cada resultado ya resuelto (métricas).
type OutcomeObserver interface {
	ObserveOutcome(out Outcome)
}
