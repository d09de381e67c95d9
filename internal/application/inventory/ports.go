package inventory

import (
	"context"

	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
)

// ReportData contenido del reporte de stock de una sesión.
type ReportData struct {
	Title       string
	GeneratedAt string
	Categories  []entity.Category
	Shipments   []entity.LogEntry // más recientes primero
	Orders      []entity.LogEntry // más recientes primero
}

// ReportGenerator genera la representación imprimible del inventario (PDF).
type ReportGenerator interface {
	GenerateStockReport(ctx context.Context, data ReportData) ([]byte, error)
}
