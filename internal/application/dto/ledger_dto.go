package dto

import (
	"bytes"
	"encoding/json"

	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
)

// Quantity acepta la cantidad como número JSON o como string (valor de un input de formulario).
// Guarda el texto crudo; la validación la hace ledger.ParseQuantity.
type Quantity string

// UnmarshalJSON implementa json.Unmarshaler.
func (q *Quantity) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*q = Quantity(s)
		return nil
	}
	if bytes.Equal(b, []byte("null")) {
		*q = ""
		return nil
	}
	*q = Quantity(b)
	return nil
}

// CreateCategoryRequest body para POST /api/ledger/categories.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// CreateProductRequest body para POST /api/ledger/products.
type CreateProductRequest struct {
	Category string `json:"category"`
	Product  string `json:"product"`
}

// MovementRequest body para POST /api/ledger/shipments y /api/ledger/orders.
type MovementRequest struct {
	Category string   `json:"category"`
	Product  string   `json:"product"`
	Quantity Quantity `json:"quantity"`
}

// ProductResponse producto del catálogo.
type ProductResponse struct {
	Name     string `json:"product"`
	Quantity int    `json:"quantity"`
}

// CategoryResponse categoría con sus productos.
type CategoryResponse struct {
	Name     string            `json:"category"`
	Products []ProductResponse `json:"products"`
}

// InventoryResponse respuesta de GET /api/ledger/inventory.
type InventoryResponse struct {
	Categories []CategoryResponse `json:"categories"`
	TotalUnits int                `json:"total_units"`
}

// LogEntryResponse entrada de un registro de envíos o pedidos.
type LogEntryResponse struct {
	Category  string `json:"category"`
	Product   string `json:"product"`
	Quantity  int    `json:"quantity"`
	Timestamp string `json:"date"`
}

// LogResponse respuesta de GET /api/ledger/shipments y /api/ledger/orders.
type LogResponse struct {
	Log     string             `json:"log"`
	Order   string             `json:"order"` // newest | chronological
	Entries []LogEntryResponse `json:"entries"`
	Page    PageResponse       `json:"page"`
}

// MovementResponse resultado de un envío o pedido aplicado.
type MovementResponse struct {
	Entry    LogEntryResponse `json:"entry"`
	Quantity int              `json:"quantity"` // stock resultante del producto
}

// ImportResponse resultado de PUT /api/ledger/snapshot.
type ImportResponse struct {
	Migrated   bool `json:"migrated"` // registros en formato antiguo descartados
	Categories int  `json:"categories"`
	Shipments  int  `json:"shipments"`
	Orders     int  `json:"orders"`
}

// NewInventoryResponse arma la respuesta del catálogo.
func NewInventoryResponse(categories []entity.Category) InventoryResponse {
	out := InventoryResponse{Categories: make([]CategoryResponse, 0, len(categories))}
	for _, c := range categories {
		cr := CategoryResponse{Name: c.Name, Products: make([]ProductResponse, 0, len(c.Products))}
		for _, p := range c.Products {
			cr.Products = append(cr.Products, ProductResponse{Name: p.Name, Quantity: p.Quantity})
			out.TotalUnits += p.Quantity
		}
		out.Categories = append(out.Categories, cr)
	}
	return out
}

// NewLogEntryResponse convierte una entrada de registro.
func NewLogEntryResponse(e entity.LogEntry) LogEntryResponse {
	return LogEntryResponse{Category: e.Category, Product: e.Product, Quantity: e.Quantity, Timestamp: e.Timestamp}
}

// NewLogResponse pagina y convierte un registro ya ordenado.
func NewLogResponse(log, order string, entries []entity.LogEntry, page PageRequest) LogResponse {
	page.DefaultPage()
	total := len(entries)
	start := min(page.Offset, total)
	end := min(start+page.Limit, total)
	out := LogResponse{
		Log:     log,
		Order:   order,
		Entries: make([]LogEntryResponse, 0, end-start),
		Page:    PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, e := range entries[start:end] {
		out.Entries = append(out.Entries, NewLogEntryResponse(e))
	}
	return out
}
