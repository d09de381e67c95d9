// Package clock fecha las entradas de los registros con el formato de fecha del locale configurado.
package clock

import (
	"time"

	"golang.org/x/text/language"

	"github.com/jhoicas/Inventario-ledger/internal/domain/ledger"
)

var _ ledger.Clock = (*LocaleClock)(nil)

// Layouts equivalentes a Date.toLocaleString() para los locales soportados.
// El orden de supported y layouts debe coincidir; el primero es el fallback del matcher.
var (
	supported = []language.Tag{
		language.AmericanEnglish,
		language.BritishEnglish,
		language.Spanish,
		language.German,
		language.French,
		language.Portuguese,
	}
	layouts = []string{
		ledger.DefaultTimestampLayout,
		"02/01/2006, 15:04:05",
		"2/1/2006, 15:04:05",
		"2.1.2006, 15:04:05",
		"02/01/2006 15:04:05",
		"02/01/2006, 15:04:05",
	}
	matcher = language.NewMatcher(supported)
)

// LocaleClock implementa ledger.Clock.
type LocaleClock struct {
	layout string
	loc    *time.Location
	now    func() time.Time
}

// New construye el reloj para un tag BCP 47 ("en-US", "es-CO", ...).
// Un tag inválido o no soportado usa el formato en-US.
func New(locale string, loc *time.Location) *LocaleClock {
	if loc == nil {
		loc = time.Local
	}
	return &LocaleClock{layout: LayoutFor(locale), loc: loc, now: time.Now}
}

// LayoutFor resuelve el layout de fecha para un locale.
func LayoutFor(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return ledger.DefaultTimestampLayout
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return ledger.DefaultTimestampLayout
	}
	return layouts[idx]
}

// Timestamp devuelve la hora actual formateada.
func (c *LocaleClock) Timestamp() string {
	return c.now().In(c.loc).Format(c.layout)
}
