package notice

import (
	"context"

	"github.com/jhoicas/rocketshoes-cart/internal/application/cart"
	"github.com/jhoicas/rocketshoes-cart/pkg/logger"
)

var _ cart.Notifier = (*LogNotifier)(nil)

// LogNotifier publica los avisos como eventos warn del logger.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el notificador.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// Notify registra el aviso.
func (n *LogNotifier) Notify(_ context.Context, notice cart.Notice) {
	n.log.Warn().
		Str("notice", string(notice.Key)).
		Str("op", string(notice.Op)).
		Int("product_id", notice.ProductID).
		Msg(notice.Message)
}
