package ledger

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseQuantity convierte la cantidad tal como llega de un formulario o del JSON.
// Solo acepta enteros positivos que caben en int; cualquier otra cosa devuelve 0,
// que el ledger rechaza con ErrInvalidQuantity después de validar categoría y producto.
func ParseQuantity(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || !d.IsInteger() || !d.IsPositive() {
		return 0
	}
	if d.GreaterThan(decimal.NewFromInt(math.MaxInt64)) {
		return 0
	}
	n := d.IntPart()
	if int64(int(n)) != n {
		return 0
	}
	return int(n)
}
