package repository

import "context"

// CartStorage almacén clave-valor opaco donde se persiste el carrito serializado.
// found=false sin error cuando la clave no existe.
type CartStorage interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}
