package postgres

import (
	"context"
	_ "embed"
	"fmt"
)

//go:embed migrations/001_schema.sql
var schemaSQL string

// EnsureSchema crea las tablas del catálogo y del carrito si no existen.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return nil
}
