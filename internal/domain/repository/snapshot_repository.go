package repository

import "context"

// SnapshotRepository es el puerto de persistencia del ledger: un blob por clave,
// equivalente a localStorage. Load devuelve found=false si la clave no existe.
type SnapshotRepository interface {
	Load(ctx context.Context, key string) (payload []byte, found bool, err error)
	Save(ctx context.Context, key string, payload []byte) error
}
