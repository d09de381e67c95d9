// Package ledger contiene el modelo en memoria del inventario: categorías, productos
// y los registros de envíos (entradas) y pedidos (salidas).
//
// El ledger no hace I/O ni bloquea: cada operación valida, aplica el cambio completo
// o devuelve un *domain.LedgerError sin tocar el estado. Persistir y mostrar el
// resultado es responsabilidad de quien lo usa.
package ledger

import (
	"math"
	"strings"

	"github.com/jhoicas/Inventario-ledger/internal/domain"
	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
)

// LogOrder indica el orden de lectura de un registro.
type LogOrder int

const (
	Chronological LogOrder = iota // orden de inserción
	NewestFirst                   // más reciente primero
)

// Confirm es la capacidad de confirmación que aporta la capa de UI antes de vaciar un registro.
// Recibe el tipo de registro (entity.LogShipment / entity.LogOrder) y cuántas entradas se borrarán.
type Confirm func(log string, entries int) bool

// Ledger es el estado del inventario de una sesión. No es seguro para uso concurrente.
type Ledger struct {
	categories []entity.Category
	shipments  []entity.LogEntry
	orders     []entity.LogEntry
	clock      Clock
	migrated   bool
}

// Option configura el ledger en New.
type Option func(*Ledger)

// WithClock reemplaza el reloj usado para fechar los registros.
func WithClock(c Clock) Option {
	return func(l *Ledger) {
		if c != nil {
			l.clock = c
		}
	}
}

// New crea el ledger. Sin snapshot usa una copia del catálogo por defecto.
// Con snapshot adopta sus categorías; si los registros vienen en el formato
// antiguo de totales agregados se descartan ambos (no son convertibles).
func New(snapshot *entity.Snapshot, opts ...Option) *Ledger {
	l := &Ledger{clock: SystemClock{}}
	for _, opt := range opts {
		opt(l)
	}
	if snapshot == nil {
		l.categories = DefaultCatalog()
		l.shipments = []entity.LogEntry{}
		l.orders = []entity.LogEntry{}
		return l
	}
	l.categories = entity.CloneCategories(snapshot.Inventory)
	if snapshot.HasLegacyLogs() {
		l.shipments = []entity.LogEntry{}
		l.orders = []entity.LogEntry{}
		l.migrated = true
		return l
	}
	l.shipments = entity.CloneLog(snapshot.Shipment)
	l.orders = entity.CloneLog(snapshot.Order)
	return l
}

// Migrated indica si New descartó registros en formato antiguo.
func (l *Ledger) Migrated() bool { return l.migrated }

// Clone copia el ledger completo; el reloj se comparte.
func (l *Ledger) Clone() *Ledger {
	return &Ledger{
		categories: entity.CloneCategories(l.categories),
		shipments:  entity.CloneLog(l.shipments),
		orders:     entity.CloneLog(l.orders),
		clock:      l.clock,
		migrated:   l.migrated,
	}
}

func (l *Ledger) findCategory(name string) int {
	for i := range l.categories {
		if l.categories[i].Name == name {
			return i
		}
	}
	return -1
}

// AddCategory agrega una categoría vacía. El nombre se guarda sin espacios en los extremos.
func (l *Ledger) AddCategory(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &domain.LedgerError{Kind: domain.ErrEmptyInput}
	}
	if l.findCategory(name) >= 0 {
		return &domain.LedgerError{Kind: domain.ErrDuplicateCategory, Category: name}
	}
	l.categories = append(l.categories, entity.Category{Name: name, Products: []entity.Product{}})
	return nil
}

// AddProduct agrega un producto con cantidad 0 a una categoría existente.
func (l *Ledger) AddProduct(categoryName, productName string) error {
	if categoryName == "" {
		return &domain.LedgerError{Kind: domain.ErrMissingCategory}
	}
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return &domain.LedgerError{Kind: domain.ErrEmptyInput, Category: categoryName}
	}
	ci := l.findCategory(categoryName)
	if ci < 0 {
		return &domain.LedgerError{Kind: domain.ErrCategoryNotFound, Category: categoryName}
	}
	cat := &l.categories[ci]
	if cat.FindProduct(productName) >= 0 {
		return &domain.LedgerError{Kind: domain.ErrDuplicateProduct, Category: categoryName, Product: productName}
	}
	cat.Products = append(cat.Products, entity.Product{Name: productName, Quantity: 0})
	return nil
}

func validateMovement(categoryName, productName string, quantity int) error {
	if categoryName == "" {
		return &domain.LedgerError{Kind: domain.ErrMissingCategory}
	}
	if productName == "" {
		return &domain.LedgerError{Kind: domain.ErrMissingProduct, Category: categoryName}
	}
	if quantity <= 0 {
		return &domain.LedgerError{Kind: domain.ErrInvalidQuantity, Category: categoryName, Product: productName, Requested: quantity}
	}
	return nil
}

// RecordShipment suma stock y agrega una entrada al registro de envíos.
// Si la categoría o el producto no existen se crean.
func (l *Ledger) RecordShipment(categoryName, productName string, quantity int) error {
	if err := validateMovement(categoryName, productName, quantity); err != nil {
		return err
	}
	ci := l.findCategory(categoryName)
	pi := -1
	if ci >= 0 {
		pi = l.categories[ci].FindProduct(productName)
		if pi >= 0 && l.categories[ci].Products[pi].Quantity > math.MaxInt-quantity {
			return &domain.LedgerError{Kind: domain.ErrInvalidQuantity, Category: categoryName, Product: productName, Requested: quantity}
		}
	}
	if ci < 0 {
		l.categories = append(l.categories, entity.Category{Name: categoryName, Products: []entity.Product{}})
		ci = len(l.categories) - 1
	}
	cat := &l.categories[ci]
	if pi >= 0 {
		cat.Products[pi].Quantity += quantity
	} else {
		cat.Products = append(cat.Products, entity.Product{Name: productName, Quantity: quantity})
	}
	l.shipments = append(l.shipments, l.entry(categoryName, productName, quantity))
	return nil
}

// RecordOrder descuenta stock y agrega una entrada al registro de pedidos.
// Nunca crea categorías; si no hay stock suficiente no aplica nada.
func (l *Ledger) RecordOrder(categoryName, productName string, quantity int) error {
	if err := validateMovement(categoryName, productName, quantity); err != nil {
		return err
	}
	ci := l.findCategory(categoryName)
	if ci < 0 {
		return &domain.LedgerError{Kind: domain.ErrCategoryNotFound, Category: categoryName}
	}
	cat := &l.categories[ci]
	pi := cat.FindProduct(productName)
	available := 0
	if pi >= 0 {
		available = cat.Products[pi].Quantity
	}
	if pi < 0 || available < quantity {
		return &domain.LedgerError{
			Kind:      domain.ErrInsufficientStock,
			Category:  categoryName,
			Product:   productName,
			Available: available,
			Requested: quantity,
		}
	}
	cat.Products[pi].Quantity -= quantity
	l.orders = append(l.orders, l.entry(categoryName, productName, quantity))
	return nil
}

func (l *Ledger) entry(categoryName, productName string, quantity int) entity.LogEntry {
	return entity.LogEntry{
		Category:  categoryName,
		Product:   productName,
		Quantity:  quantity,
		Timestamp: l.clock.Timestamp(),
	}
}

// ClearShipments vacía el registro de envíos si confirm lo autoriza. El inventario no cambia.
func (l *Ledger) ClearShipments(confirm Confirm) error {
	return clearLog(&l.shipments, entity.LogShipment, confirm)
}

// ClearOrders vacía el registro de pedidos si confirm lo autoriza. El inventario no cambia.
func (l *Ledger) ClearOrders(confirm Confirm) error {
	return clearLog(&l.orders, entity.LogOrder, confirm)
}

func clearLog(log *[]entity.LogEntry, kind string, confirm Confirm) error {
	n := len(*log)
	if n == 0 {
		return &domain.LedgerError{Kind: domain.ErrEmptyLog, Log: kind}
	}
	if confirm == nil || !confirm(kind, n) {
		return &domain.LedgerError{Kind: domain.ErrNotConfirmed, Log: kind}
	}
	*log = []entity.LogEntry{}
	return nil
}

// Serialize produce el snapshot para el almacenamiento. No comparte memoria con el ledger.
func (l *Ledger) Serialize() entity.Snapshot {
	return entity.Snapshot{
		Inventory: entity.CloneCategories(l.categories),
		Shipment:  entity.CloneLog(l.shipments),
		Order:     entity.CloneLog(l.orders),
	}
}

// Categories devuelve una copia del catálogo en orden de inserción.
func (l *Ledger) Categories() []entity.Category {
	return entity.CloneCategories(l.categories)
}

// Category busca una categoría por nombre exacto.
func (l *Ledger) Category(name string) (entity.Category, bool) {
	ci := l.findCategory(name)
	if ci < 0 {
		return entity.Category{}, false
	}
	return l.categories[ci].Clone(), true
}

// Quantity devuelve el stock de un producto (0, false si no existe).
func (l *Ledger) Quantity(categoryName, productName string) (int, bool) {
	ci := l.findCategory(categoryName)
	if ci < 0 {
		return 0, false
	}
	pi := l.categories[ci].FindProduct(productName)
	if pi < 0 {
		return 0, false
	}
	return l.categories[ci].Products[pi].Quantity, true
}

// Shipments devuelve una copia del registro de envíos.
func (l *Ledger) Shipments(order LogOrder) []entity.LogEntry {
	return readLog(l.shipments, order)
}

// Orders devuelve una copia del registro de pedidos.
func (l *Ledger) Orders(order LogOrder) []entity.LogEntry {
	return readLog(l.orders, order)
}

func readLog(log []entity.LogEntry, order LogOrder) []entity.LogEntry {
	out := entity.CloneLog(log)
	if order == NewestFirst {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}
