package entity

// Tipos de registro (value object conceptual).
const (
	LogShipment = "shipment" // entrada
	LogOrder    = "order"    // salida
)

// LogEntry es un evento de envío o pedido. Una vez agregado al registro no se modifica.
// Timestamp se serializa como "date" para leer los datos que ya guardó el navegador.
type LogEntry struct {
	Category  string `json:"category"`
	Product   string `json:"product"`
	Quantity  int    `json:"quantity"`
	Timestamp string `json:"date"`
}

// CloneLog copia un registro (nunca devuelve nil).
func CloneLog(in []LogEntry) []LogEntry {
	out := make([]LogEntry, len(in))
	copy(out, in)
	return out
}
