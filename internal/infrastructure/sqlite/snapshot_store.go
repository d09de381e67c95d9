// Package sqlite persiste los snapshots del ledger en un archivo SQLite local,
// el equivalente en servidor al localStorage del navegador.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotStore)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS ledger_snapshots (
	storage_key TEXT PRIMARY KEY,
	payload     TEXT NOT NULL,
	updated_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// SnapshotStore implementación de SnapshotRepository sobre SQLite.
type SnapshotStore struct {
	db *sql.DB
}

// Open crea o abre la base en path y aplica el esquema (idempotente).
func Open(ctx context.Context, path string) (*SnapshotStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	// SQLite admite un solo escritor
	db.SetMaxOpenConns(1)

	for _, stmt := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		schema,
	} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite %q: %w", stmt, err)
		}
	}
	return &SnapshotStore{db: db}, nil
}

// Close cierra la conexión.
func (s *SnapshotStore) Close() error {
	return s.db.Close()
}

// Load obtiene el payload de una clave.
func (s *SnapshotStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM ledger_snapshots WHERE storage_key = ?`, key,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("load snapshot: %w", err)
	}
	return []byte(payload), true, nil
}

// Save inserta o reemplaza el payload de una clave.
func (s *SnapshotStore) Save(ctx context.Context, key string, payload []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO ledger_snapshots (storage_key, payload, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (storage_key)
		DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP`,
		key, string(payload),
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
