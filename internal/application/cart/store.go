package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jhoicas/rocketshoes-cart/internal/domain"
	"github.com/jhoicas/rocketshoes-cart/internal/domain/entity"
	"github.com/jhoicas/rocketshoes-cart/internal/domain/repository"
	"github.com/jhoicas/rocketshoes-cart/pkg/i18n"
	"github.com/jhoicas/rocketshoes-cart/pkg/logger"
)

// Options parámetros opcionales del Store.
type Options struct {
	Key      string // clave en CartStorage; vacío = "@RocketShoes:cart"
	Messages *i18n.Catalog
	Logger   *logger.Logger
	Observer OutcomeObserver
}

const defaultKey = "@RocketShoes:cart"

// UpdateProductAmount entrada de Store.UpdateProductAmount.
type UpdateProductAmount struct {
	ProductID int
	Amount    int
}

// Store dueño del carrito en memoria. Cada mutación aceptada que cambia el contenido
// se escribe en CartStorage antes de publicarse, así memoria y almacén no divergen.
// Las operaciones se ejecutan de a una.
type Store struct {
	mu sync.Mutex

	key      string
	storage  repository.CartStorage
	catalog  CatalogGateway
	notifier Notifier
	messages *i18n.Catalog
	log      *logger.Logger
	observer OutcomeObserver

	cart        entity.Cart
	lastFlushed entity.Cart
}

// NewStore carga el carrito persistido (o uno vacío si la clave no existe).
// La carga no escribe en el almacén.
func NewStore(
	ctx context.Context,
	storage repository.CartStorage,
	catalog CatalogGateway,
	notifier Notifier,
	opts Options,
) (*Store, error) {
	s := &Store{
		key:      opts.Key,
		storage:  storage,
		catalog:  catalog,
		notifier: notifier,
		messages: opts.Messages,
		log:      opts.Logger,
		observer: opts.Observer,
	}
	if s.key == "" {
		s.key = defaultKey
	}
	if s.messages == nil {
		s.messages = i18n.NewCatalog("")
	}
	if s.log == nil {
		s.log = logger.Nop()
	}

	raw, found, err := storage.Get(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("cargar carrito: %w", err)
	}
	var loaded entity.Cart
	if found && raw != "" {
		if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
			return nil, fmt.Errorf("cargar carrito: %w: %v", domain.ErrMalformed, err)
		}
	}
	// lastFlushed queda con lo que hay en el almacén; si Normalize corrigió algo,
	// la próxima mutación aceptada reescribe el valor.
	s.lastFlushed = loaded
	s.cart = loaded.Normalize()
	return s, nil
}

// Cart devuelve una copia del carrito actual.
func (s *Store) Cart() entity.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Clone()
}

// AddProduct agrega una unidad del producto si el stock lo permite.
func (s *Store) AddProduct(ctx context.Context, productID int) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finish(ctx, s.addProduct(ctx, productID))
}

func (s *Store) addProduct(ctx context.Context, productID int) Outcome {
	out := Outcome{Op: OpAdd, ProductID: productID}

	stock, err := s.lookupStock(ctx, productID)
	if err != nil {
		return out.reject(RejectedByLookupFailure, err)
	}

	existing, exists := s.cart.Find(productID)
	current := 0
	if exists {
		current = existing.Amount
	}
	if current+1 > stock.Amount {
		return out.reject(RejectedByStock, domain.ErrInsufficientStock)
	}

	var next entity.Cart
	if exists {
		next = s.cart.WithAmount(productID, current+1)
	} else {
		product, err := s.catalog.GetProduct(ctx, productID)
		if err != nil {
			return out.reject(RejectedByLookupFailure, fmt.Errorf("consultar producto: %w", err))
		}
		if product.ID != productID {
			return out.reject(RejectedByLookupFailure,
				fmt.Errorf("consultar producto: %w: id %d, esperado %d", domain.ErrMalformed, product.ID, productID))
		}
		next = s.cart.Append(entity.NewCartEntry(product, 1))
	}

	if err := s.commit(ctx, next); err != nil {
		return out.reject(RejectedByLookupFailure, err)
	}
	out.Kind = Committed
	return out
}

// RemoveProduct elimina el producto del carrito. Un producto ausente es un rechazo con aviso.
func (s *Store) RemoveProduct(ctx context.Context, productID int) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finish(ctx, s.removeProduct(ctx, productID))
}

func (s *Store) removeProduct(ctx context.Context, productID int) Outcome {
	out := Outcome{Op: OpRemove, ProductID: productID}
	if !s.cart.Contains(productID) {
		return out.reject(RejectedNotFound, domain.ErrNotFound)
	}
	if err := s.commit(ctx, s.cart.Without(productID)); err != nil {
		return out.reject(RejectedByLookupFailure, err)
	}
	out.Kind = Committed
	return out
}

// UpdateProductAmount fija la cantidad del producto si el stock la cubre.
// Cantidades <= 0 se ignoran sin aviso; un ID ausente deja el carrito igual.
func (s *Store) UpdateProductAmount(ctx context.Context, in UpdateProductAmount) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finish(ctx, s.updateProductAmount(ctx, in))
}

func (s *Store) updateProductAmount(ctx context.Context, in UpdateProductAmount) Outcome {
	out := Outcome{Op: OpUpdateAmount, ProductID: in.ProductID}
	if in.Amount <= 0 {
		out.Kind = NoOp
		return out
	}

	stock, err := s.lookupStock(ctx, in.ProductID)
	if err != nil {
		return out.reject(RejectedByLookupFailure, err)
	}
	if stock.Amount < in.Amount {
		return out.reject(RejectedByStock, domain.ErrInsufficientStock)
	}

	if err := s.commit(ctx, s.cart.WithAmount(in.ProductID, in.Amount)); err != nil {
		return out.reject(RejectedByLookupFailure, err)
	}
	out.Kind = Committed
	return out
}

// lookupStock consulta el stock; una respuesta de otro producto se trata como mal formada.
func (s *Store) lookupStock(ctx context.Context, productID int) (*entity.Stock, error) {
	stock, err := s.catalog.GetStock(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("consultar stock: %w", err)
	}
	if stock == nil {
		return nil, fmt.Errorf("consultar stock: %w: respuesta vacía", domain.ErrMalformed)
	}
	if stock.ID != productID {
		return nil, fmt.Errorf("consultar stock: %w: id %d, esperado %d", domain.ErrMalformed, stock.ID, productID)
	}
	return stock, nil
}

// commit publica next como carrito actual. Si difiere de lo último escrito se persiste
// primero; un fallo de escritura deja el carrito anterior intacto.
func (s *Store) commit(ctx context.Context, next entity.Cart) error {
	if !next.Equal(s.lastFlushed) {
		data, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("serializar carrito: %w", err)
		}
		if err := s.storage.Set(ctx, s.key, string(data)); err != nil {
			return fmt.Errorf("persistir carrito: %w", err)
		}
		s.lastFlushed = next.Clone()
	}
	s.cart = next
	return nil
}

// finish convierte un rechazo en un único aviso y registra el resultado.
// Se llama con el lock tomado: out.Cart es el carrito tal como quedó tras la operación.
func (s *Store) finish(ctx context.Context, out Outcome) Outcome {
	out.Cart = s.cart.Clone()
	if key, ok := out.noticeKey(); ok {
		n := Notice{
			Key:       key,
			Message:   s.messages.Text(key),
			Op:        out.Op,
			ProductID: out.ProductID,
		}
		out.Notice = &n
		if s.notifier != nil {
			s.notifier.Notify(ctx, n)
		}
	}

	ev := s.log.Info()
	if !out.Accepted() {
		ev = s.log.Warn().AnErr("cause", out.Err)
	}
	ev.Str("op_id", uuid.NewString()).
		Str("op", string(out.Op)).
		Int("product_id", out.ProductID).
		Str("outcome", out.Kind.String()).
		Int("cart_entries", len(s.cart)).
		Msg("operación de carrito")
	if s.observer != nil {
		s.observer.ObserveOutcome(out)
	}
	return out
}

func (o Outcome) reject(kind OutcomeKind, err error) Outcome {
	o.Kind = kind
	o.Err = err
	return o
}
