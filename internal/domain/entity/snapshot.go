package entity

import (
	"encoding/json"
	"fmt"
)

// Snapshot es la forma serializada del ledger que se intercambia con el almacenamiento.
type Snapshot struct {
	Inventory []Category `json:"inventory"`
	Shipment  []LogEntry `json:"shipment"`
	Order     []LogEntry `json:"order"`
}

// HasLegacyLogs detecta el formato antiguo de totales agregados: el primer envío
// trae "category" pero no trae fecha.
func (s *Snapshot) HasLegacyLogs() bool {
	if len(s.Shipment) == 0 {
		return false
	}
	first := s.Shipment[0]
	return first.Category != "" && first.Timestamp == ""
}

// DecodeSnapshot parsea el payload JSON guardado.
func DecodeSnapshot(payload []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &s, nil
}

// Encode serializa el snapshot a JSON.
func (s Snapshot) Encode() ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return b, nil
}
