package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrUnavailable       = errors.New("servicio externo no disponible")
	ErrMalformed         = errors.New("respuesta mal formada")
)
