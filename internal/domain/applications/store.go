package applications

import (
	"context"
	"errors"
)

// Claves del almacén clave-valor.
const (
	// DraftKey guarda el draft en progreso (un objeto JSON).
	DraftKey = "dog-license:draft"
	// ApplicationsKey guarda la lista de solicitudes enviadas (array JSON).
	ApplicationsKey = "dog-license:applications"
)

var ErrNotFound = errors.New("not found")

// Store es el puerto clave-valor inyectado. Permite sustituir el
// backend (memoria para tests, Postgres o Redis para persistencia real).
//
// Contrato de errores:
// - Get devuelve un error que envuelve ErrNotFound si la clave no existe
// - Remove es idempotente: borrar una clave ausente devuelve nil
// - Errores de infraestructura van envueltos con contexto
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
