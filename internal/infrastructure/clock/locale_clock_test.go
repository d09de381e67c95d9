package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Inventario-ledger/internal/domain/ledger"
)

func TestLayoutFor(t *testing.T) {
	assert.Equal(t, ledger.DefaultTimestampLayout, LayoutFor("en-US"))
	assert.Equal(t, "2/1/2006, 15:04:05", LayoutFor("es-CO"))
	assert.Equal(t, "2.1.2006, 15:04:05", LayoutFor("de-DE"))
	assert.Equal(t, ledger.DefaultTimestampLayout, LayoutFor("no es un tag"))
}

func TestLocaleClock_Timestamp(t *testing.T) {
	fixed := time.Date(2026, time.October, 16, 15, 4, 5, 0, time.UTC)

	c := New("en-US", time.UTC)
	c.now = func() time.Time { return fixed }
	assert.Equal(t, "10/16/2026, 3:04:05 PM", c.Timestamp())

	c = New("es", time.UTC)
	c.now = func() time.Time { return fixed }
	assert.Equal(t, "16/10/2026, 15:04:05", c.Timestamp())
}
