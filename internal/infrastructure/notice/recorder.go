package notice

import (
	"context"
	"sync"

	"github.com/jhoicas/rocketshoes-cart/internal/application/cart"
)

var _ cart.Notifier = (*Recorder)(nil)

// DefaultCapacity avisos que conserva un Recorder por defecto.
const DefaultCapacity = 50

// Recorder guarda los últimos avisos recibidos y opcionalmente los reenvía a otro Notifier.
type Recorder struct {
	mu       sync.Mutex
	notices  []cart.Notice
	capacity int
	next     cart.Notifier
}

// NewRecorder construye el Recorder con DefaultCapacity; next puede ser nil.
func NewRecorder(next cart.Notifier) *Recorder {
	return NewRecorderWithCapacity(next, DefaultCapacity)
}

// NewRecorderWithCapacity conserva como máximo capacity avisos (los más recientes).
func NewRecorderWithCapacity(next cart.Notifier, capacity int) *Recorder {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Recorder{next: next, capacity: capacity}
}

// Notify guarda el aviso y lo reenvía.
func (r *Recorder) Notify(ctx context.Context, n cart.Notice) {
	r.mu.Lock()
	r.notices = append(r.notices, n)
	if over := len(r.notices) - r.capacity; over > 0 {
		r.notices = append(r.notices[:0:0], r.notices[over:]...)
	}
	r.mu.Unlock()
	if r.next != nil {
		r.next.Notify(ctx, n)
	}
}

// Notices copia de los avisos guardados, del más antiguo al más nuevo.
func (r *Recorder) Notices() []cart.Notice {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]cart.Notice, len(r.notices))
	copy(out, r.notices)
	return out
}

// Last último aviso recibido.
func (r *Recorder) Last() (cart.Notice, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notices) == 0 {
		return cart.Notice{}, false
	}
	return r.notices[len(r.notices)-1], true
}

// Reset descarta los avisos guardados.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.notices = nil
	r.mu.Unlock()
}
