// Package inventory orquesta las sesiones del ledger: carga el snapshot del almacenamiento,
// aplica la operación y persiste el resultado solo si la operación tuvo éxito.
package inventory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/Inventario-ledger/internal/domain"
	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/Inventario-ledger/internal/domain/ledger"
	"github.com/jhoicas/Inventario-ledger/internal/domain/repository"
	"github.com/jhoicas/Inventario-ledger/pkg/logger"
)

// reportLogEntries cantidad de movimientos recientes que entran al reporte.
const reportLogEntries = 15

// Service mantiene un ledger por clave de almacenamiento.
// El ledger no es concurrente; Service serializa todas las llamadas con mu.
type Service struct {
	store   repository.SnapshotRepository
	clock   ledger.Clock
	reports ReportGenerator
	log     *logger.Logger

	mu       sync.Mutex
	sessions map[string]*ledger.Ledger
}

// NewService construye el servicio. reports puede ser nil si no se expone el reporte.
func NewService(
	store repository.SnapshotRepository,
	clock ledger.Clock,
	reports ReportGenerator,
	log *logger.Logger,
) *Service {
	if log == nil {
		log = logger.Nop()
	}
	if clock == nil {
		clock = ledger.SystemClock{}
	}
	return &Service{
		store:    store,
		clock:    clock,
		reports:  reports,
		log:      log,
		sessions: make(map[string]*ledger.Ledger),
	}
}

// MovementResult es el estado del producto después de un envío o pedido.
type MovementResult struct {
	Entry    entity.LogEntry
	Quantity int
}

// session devuelve el ledger de key, cargándolo si hace falta. Requiere mu tomado.
func (s *Service) session(ctx context.Context, key string) (*ledger.Ledger, error) {
	if l, ok := s.sessions[key]; ok {
		return l, nil
	}
	payload, found, err := s.store.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("cargar %q: %w", key, err)
	}
	if !found {
		l := ledger.New(nil, ledger.WithClock(s.clock))
		s.sessions[key] = l
		s.log.Info().Str("session", key).Msg("sesión nueva con catálogo por defecto")
		return l, nil
	}
	l, err := s.decode(key, payload)
	if err != nil {
		return nil, err
	}
	s.sessions[key] = l
	return l, nil
}

func (s *Service) decode(key string, payload []byte) (*ledger.Ledger, error) {
	snap, err := entity.DecodeSnapshot(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSnapshot, err)
	}
	l := ledger.New(snap, ledger.WithClock(s.clock))
	if l.Migrated() {
		s.log.Warn().Str("session", key).Msg("registros en formato agregado descartados")
	}
	return l, nil
}

// view ejecuta fn sobre el ledger de la sesión sin modificarlo.
func (s *Service) view(ctx context.Context, key string, fn func(*ledger.Ledger)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, err := s.session(ctx, key)
	if err != nil {
		return err
	}
	fn(l)
	return nil
}

// mutate aplica fn sobre una copia, guarda la copia y solo entonces la instala.
// Si fn o el guardado fallan, la sesión queda como estaba.
func (s *Service) mutate(ctx context.Context, key, op string, fn func(*ledger.Ledger) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	current, err := s.session(ctx, key)
	if err != nil {
		return err
	}
	next := current.Clone()
	if err := fn(next); err != nil {
		s.log.Debug().Str("session", key).Str("op", op).Err(err).Msg("operación rechazada")
		return err
	}
	if err := s.persist(ctx, key, next); err != nil {
		return err
	}
	s.sessions[key] = next
	s.log.Info().Str("session", key).Str("op", op).Msg("ledger actualizado")
	return nil
}

func (s *Service) persist(ctx context.Context, key string, l *ledger.Ledger) error {
	payload, err := l.Serialize().Encode()
	if err != nil {
		return err
	}
	if err := s.store.Save(ctx, key, payload); err != nil {
		s.log.Error().Str("session", key).Err(err).Msg("guardar snapshot")
		return fmt.Errorf("guardar %q: %w", key, err)
	}
	return nil
}

// Inventory devuelve el catálogo de la sesión.
func (s *Service) Inventory(ctx context.Context, key string) ([]entity.Category, error) {
	var out []entity.Category
	err := s.view(ctx, key, func(l *ledger.Ledger) { out = l.Categories() })
	return out, err
}

// Shipments devuelve el registro de envíos en el orden pedido.
func (s *Service) Shipments(ctx context.Context, key string, order ledger.LogOrder) ([]entity.LogEntry, error) {
	var out []entity.LogEntry
	err := s.view(ctx, key, func(l *ledger.Ledger) { out = l.Shipments(order) })
	return out, err
}

// Orders devuelve el registro de pedidos en el orden pedido.
func (s *Service) Orders(ctx context.Context, key string, order ledger.LogOrder) ([]entity.LogEntry, error) {
	var out []entity.LogEntry
	err := s.view(ctx, key, func(l *ledger.Ledger) { out = l.Orders(order) })
	return out, err
}

// Snapshot devuelve el estado serializable de la sesión.
func (s *Service) Snapshot(ctx context.Context, key string) (entity.Snapshot, error) {
	var out entity.Snapshot
	err := s.view(ctx, key, func(l *ledger.Ledger) { out = l.Serialize() })
	return out, err
}

// AddCategory agrega una categoría y persiste.
func (s *Service) AddCategory(ctx context.Context, key, name string) error {
	return s.mutate(ctx, key, "add_category", func(l *ledger.Ledger) error {
		return l.AddCategory(name)
	})
}

// AddProduct agrega un producto con cantidad 0 y persiste.
func (s *Service) AddProduct(ctx context.Context, key, category, product string) error {
	return s.mutate(ctx, key, "add_product", func(l *ledger.Ledger) error {
		return l.AddProduct(category, product)
	})
}

// RecordShipment registra una entrada de stock y persiste.
func (s *Service) RecordShipment(ctx context.Context, key, category, product string, quantity int) (MovementResult, error) {
	var res MovementResult
	err := s.mutate(ctx, key, "shipment", func(l *ledger.Ledger) error {
		if err := l.RecordShipment(category, product, quantity); err != nil {
			return err
		}
		res = movementResult(l, l.Shipments(ledger.NewestFirst))
		return nil
	})
	return res, err
}

// RecordOrder registra una salida de stock y persiste.
func (s *Service) RecordOrder(ctx context.Context, key, category, product string, quantity int) (MovementResult, error) {
	var res MovementResult
	err := s.mutate(ctx, key, "order", func(l *ledger.Ledger) error {
		if err := l.RecordOrder(category, product, quantity); err != nil {
			return err
		}
		res = movementResult(l, l.Orders(ledger.NewestFirst))
		return nil
	})
	return res, err
}

func movementResult(l *ledger.Ledger, newestFirst []entity.LogEntry) MovementResult {
	entry := newestFirst[0]
	qty, _ := l.Quantity(entry.Category, entry.Product)
	return MovementResult{Entry: entry, Quantity: qty}
}

// ClearShipments vacía el registro de envíos si confirm lo autoriza.
func (s *Service) ClearShipments(ctx context.Context, key string, confirm ledger.Confirm) error {
	return s.mutate(ctx, key, "clear_shipments", func(l *ledger.Ledger) error {
		return l.ClearShipments(confirm)
	})
}

// ClearOrders vacía el registro de pedidos si confirm lo autoriza.
func (s *Service) ClearOrders(ctx context.Context, key string, confirm ledger.Confirm) error {
	return s.mutate(ctx, key, "clear_orders", func(l *ledger.Ledger) error {
		return l.ClearOrders(confirm)
	})
}

// Import reemplaza la sesión con un snapshot externo (por ejemplo, una exportación del
// localStorage del navegador). Los registros en formato antiguo se descartan.
func (s *Service) Import(ctx context.Context, key string, payload []byte) (*ledger.Ledger, error) {
	l, err := s.decode(key, payload)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.persist(ctx, key, l); err != nil {
		return nil, err
	}
	s.sessions[key] = l
	s.log.Info().Str("session", key).Bool("migrated", l.Migrated()).Msg("snapshot importado")
	return l.Clone(), nil
}

// Reset vuelve la sesión al catálogo por defecto con registros vacíos.
func (s *Service) Reset(ctx context.Context, key string) error {
	l := ledger.New(nil, ledger.WithClock(s.clock))
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.persist(ctx, key, l); err != nil {
		return err
	}
	s.sessions[key] = l
	s.log.Info().Str("session", key).Msg("sesión reiniciada")
	return nil
}

// Report genera el reporte de stock de la sesión.
func (s *Service) Report(ctx context.Context, key, title string) ([]byte, error) {
	if s.reports == nil {
		return nil, fmt.Errorf("reporte no configurado")
	}
	var data ReportData
	err := s.view(ctx, key, func(l *ledger.Ledger) {
		data = ReportData{
			Title:       title,
			GeneratedAt: s.clock.Timestamp(),
			Categories:  l.Categories(),
			Shipments:   head(l.Shipments(ledger.NewestFirst), reportLogEntries),
			Orders:      head(l.Orders(ledger.NewestFirst), reportLogEntries),
		}
	})
	if err != nil {
		return nil, err
	}
	return s.reports.GenerateStockReport(ctx, data)
}

func head(entries []entity.LogEntry, n int) []entity.LogEntry {
	if len(entries) > n {
		return entries[:n]
	}
	return entries
}
