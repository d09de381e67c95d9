// Package storage selecciona el adaptador de persistencia del ledger según STORAGE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/Inventario-ledger/internal/infrastructure/memory"
	"github.com/jhoicas/Inventario-ledger/internal/infrastructure/postgres"
	"github.com/jhoicas/Inventario-ledger/internal/infrastructure/sqlite"
	"github.com/jhoicas/Inventario-ledger/pkg/config"
)

// Open abre el store configurado. La función devuelta libera conexiones y siempre es no-nil.
func Open(ctx context.Context, cfg *config.Config) (repository.SnapshotRepository, func(), error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		return memory.NewSnapshotStore(), func() {}, nil
	case config.StorageSQLite:
		s, err := sqlite.Open(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, func() {}, err
		}
		return s, func() { _ = s.Close() }, nil
	case config.StoragePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, func() {}, err
		}
		return postgres.NewSnapshotStore(pool), pool.Close, nil
	default:
		return nil, func() {}, fmt.Errorf("storage: driver desconocido %q", cfg.Storage.Driver)
	}
}
