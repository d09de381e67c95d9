package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrEmptyInput        = errors.New("entrada vacía")
	ErrDuplicateCategory = errors.New("la categoría ya existe")
	ErrDuplicateProduct  = errors.New("el producto ya existe en la categoría")
	ErrMissingCategory   = errors.New("categoría no seleccionada")
	ErrMissingProduct    = errors.New("producto no seleccionado")
	ErrCategoryNotFound  = errors.New("categoría no encontrada")
	ErrInvalidQuantity   = errors.New("cantidad inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrEmptyLog          = errors.New("registro vacío")
	ErrNotConfirmed      = errors.New("operación no confirmada")
	ErrInvalidSnapshot   = errors.New("snapshot inválido")
	ErrUnauthorized      = errors.New("no autorizado")
)

// LedgerError es el resultado tipado de una operación rechazada por el ledger.
// Kind es uno de los sentinels de arriba; errors.Is(err, domain.ErrX) funciona vía Unwrap.
type LedgerError struct {
	Kind      error
	Category  string
	Product   string
	Log       string // "shipment" u "order" para errores sobre registros
	Available int
	Requested int
}

func (e *LedgerError) Error() string {
	switch e.Kind {
	case ErrDuplicateCategory:
		return fmt.Sprintf("la categoría %q ya existe", e.Category)
	case ErrDuplicateProduct:
		return fmt.Sprintf("el producto %q ya existe en %q", e.Product, e.Category)
	case ErrCategoryNotFound:
		return fmt.Sprintf("categoría %q no encontrada", e.Category)
	case ErrInsufficientStock:
		return fmt.Sprintf("stock insuficiente de %q: disponible %d, solicitado %d", e.Product, e.Available, e.Requested)
	case ErrEmptyLog:
		return fmt.Sprintf("no hay registros de %s", e.Log)
	case ErrNotConfirmed:
		return fmt.Sprintf("borrado de %s no confirmado", e.Log)
	}
	if e.Kind == nil {
		return "error de ledger"
	}
	return e.Kind.Error()
}

func (e *LedgerError) Unwrap() error { return e.Kind }

// AsLedgerError extrae el LedgerError de una cadena de errores.
func AsLedgerError(err error) (*LedgerError, bool) {
	var le *LedgerError
	if errors.As(err, &le) {
		return le, true
	}
	return nil, false
}
