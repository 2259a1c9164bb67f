package catalogapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"

	"github.com/jhoicas/rocketshoes-cart/internal/application/cart"
	"github.com/jhoicas/rocketshoes-cart/internal/application/dto"
	"github.com/jhoicas/rocketshoes-cart/internal/domain"
	"github.com/jhoicas/rocketshoes-cart/internal/domain/entity"
)

// Verificar en tiempo de compilación que Client implementa CatalogGateway.
var _ cart.CatalogGateway = (*Client)(nil)

// BreakerSettings circuit breaker del catálogo. Valores cero usan los defaults (5 fallos, 30s abierto).
type BreakerSettings struct {
	MaxFailures uint32        // fallos consecutivos que abren el circuito
	OpenTimeout time.Duration // tiempo abierto antes de probar de nuevo
}

// Client adaptador HTTP del catálogo remoto: GET /stock/{id} y GET /products/{id}.
// Solo los fallos de disponibilidad abren el circuito; un 404 es una respuesta válida.
type Client struct {
	http    *resty.Client
	breaker *gobreaker.CircuitBreaker
}

// NewClient construye el cliente. baseURL sin barra final (ej. "http://localhost:3333").
func NewClient(baseURL string, timeout time.Duration, bs BreakerSettings) *Client {
	if bs.MaxFailures == 0 {
		bs.MaxFailures = 5
	}
	if bs.OpenTimeout <= 0 {
		bs.OpenTimeout = 30 * time.Second
	}
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "catalog",
		Timeout: bs.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= bs.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !errors.Is(err, domain.ErrUnavailable)
		},
	})
	return &Client{http: rc, breaker: cb}
}

// State estado del circuit breaker ("closed", "open", "half-open").
func (c *Client) State() string {
	return c.breaker.State().String()
}

// GetStock consulta el stock del producto.
func (c *Client) GetStock(ctx context.Context, productID int) (*entity.Stock, error) {
	var out dto.StockResponse
	if err := c.getJSON(ctx, "/stock/"+strconv.Itoa(productID), &out); err != nil {
		return nil, fmt.Errorf("catálogo: stock %d: %w", productID, err)
	}
	// {} o null decodifican sin error con id 0.
	if out.ID != productID {
		return nil, fmt.Errorf("catálogo: stock %d: %w: id %d en la respuesta", productID, domain.ErrMalformed, out.ID)
	}
	return out.ToEntity(), nil
}

// GetProduct consulta los datos del producto.
func (c *Client) GetProduct(ctx context.Context, productID int) (*entity.Product, error) {
	var out dto.ProductResponse
	if err := c.getJSON(ctx, "/products/"+strconv.Itoa(productID), &out); err != nil {
		return nil, fmt.Errorf("catálogo: producto %d: %w", productID, err)
	}
	if out.ID != productID {
		return nil, fmt.Errorf("catálogo: producto %d: %w: id %d en la respuesta", productID, domain.ErrMalformed, out.ID)
	}
	return out.ToEntity(), nil
}

func (c *Client) getJSON(ctx context.Context, path string, dst any) error {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		return nil, c.fetch(ctx, path, dst)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	return err
}

func (c *Client) fetch(ctx context.Context, path string, dst any) error {
	resp, err := c.http.R().SetContext(ctx).Get(path)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: timeout o cancelación: %v", domain.ErrUnavailable, ctx.Err())
		}
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode() != http.StatusOK:
		return fmt.Errorf("%w: HTTP %d", domain.ErrUnavailable, resp.StatusCode())
	}

	if err := json.Unmarshal(resp.Body(), dst); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMalformed, err)
	}
	return nil
}
