package ledger

import "time"

// DefaultTimestampLayout imita toLocaleString() en en-US.
const DefaultTimestampLayout = "1/2/2006, 3:04:05 PM"

// Clock produce la fecha, ya formateada, de cada entrada de registro.
type Clock interface {
	Timestamp() string
}

// SystemClock usa la hora local con DefaultTimestampLayout.
type SystemClock struct{}

func (SystemClock) Timestamp() string { return time.Now().Format(DefaultTimestampLayout) }

// ClockFunc adapta una función a Clock.
type ClockFunc func() string

func (f ClockFunc) Timestamp() string { return f() }
