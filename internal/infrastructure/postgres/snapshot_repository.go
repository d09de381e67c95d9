package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotStore)(nil)

// SnapshotRepo lee y escribe el blob del ledger (usable con pool o tx).
type SnapshotRepo struct {
	q Querier
}

// NewSnapshotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSnapshotRepository(q Querier) *SnapshotRepo {
	return &SnapshotRepo{q: q}
}

// Get obtiene el payload de una clave; found=false si no existe.
func (r *SnapshotRepo) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var payload []byte
	err := r.q.QueryRow(ctx,
		`SELECT payload::text FROM ledger_snapshots WHERE storage_key = $1`, key,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get snapshot: %w", err)
	}
	return payload, true, nil
}

// Upsert inserta o reemplaza el payload de una clave.
func (r *SnapshotRepo) Upsert(ctx context.Context, key string, payload []byte) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO ledger_snapshots (storage_key, payload, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (storage_key)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`,
		key, string(payload),
	)
	if err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}

// SnapshotStore implementa repository.SnapshotRepository: el blob y su proyección
// de stock se escriben en la misma transacción.
type SnapshotStore struct {
	pool *pgxpool.Pool
	tx   *TxRunner
}

// NewSnapshotStore construye el store sobre el pool.
func NewSnapshotStore(pool *pgxpool.Pool) *SnapshotStore {
	return &SnapshotStore{pool: pool, tx: NewTxRunner(pool)}
}

// Load lee el blob fuera de transacción.
func (s *SnapshotStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	return NewSnapshotRepository(s.pool).Get(ctx, key)
}

// Save guarda el blob y regenera las filas de ledger_stock de esa clave.
func (s *SnapshotStore) Save(ctx context.Context, key string, payload []byte) error {
	snap, err := entity.DecodeSnapshot(payload)
	if err != nil {
		return err
	}
	return s.tx.Run(ctx, func(snapshots *SnapshotRepo, stock *StockProjectionRepo) error {
		if err := snapshots.Upsert(ctx, key, payload); err != nil {
			return err
		}
		return stock.Replace(ctx, key, snap.Inventory)
	})
}
