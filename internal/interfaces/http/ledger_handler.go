package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-ledger/internal/application/dto"
	"github.com/jhoicas/Inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/Inventario-ledger/internal/domain"
	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
	"github.com/jhoicas/Inventario-ledger/internal/domain/ledger"
)

// LedgerHandler maneja las peticiones HTTP del ledger de inventario.
type LedgerHandler struct {
	svc *inventory.Service
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(svc *inventory.Service) *LedgerHandler {
	return &LedgerHandler{svc: svc}
}

// Inventory godoc
// @Summary      Catálogo con cantidades
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/ledger/inventory [get]
func (h *LedgerHandler) Inventory(c *fiber.Ctx) error {
	cats, err := h.svc.Inventory(c.Context(), GetSessionKey(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewInventoryResponse(cats))
}

// Shipments godoc
// @Summary      Registro de envíos
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        order   query  string  false  "newest (defecto) | chronological"
// @Param        limit   query  int     false  "máximo de entradas (defecto 50)"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {object}  dto.LogResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ledger/shipments [get]
func (h *LedgerHandler) Shipments(c *fiber.Ctx) error {
	return h.listLog(c, entity.LogShipment, h.svc.Shipments)
}

// Orders godoc
// @Summary      Registro de pedidos
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        order   query  string  false  "newest (defecto) | chronological"
// @Param        limit   query  int     false  "máximo de entradas (defecto 50)"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {object}  dto.LogResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ledger/orders [get]
func (h *LedgerHandler) Orders(c *fiber.Ctx) error {
	return h.listLog(c, entity.LogOrder, h.svc.Orders)
}

type logReader func(ctx context.Context, key string, order ledger.LogOrder) ([]entity.LogEntry, error)

func (h *LedgerHandler) listLog(c *fiber.Ctx, log string, read logReader) error {
	orderParam := c.Query("order", "newest")
	var order ledger.LogOrder
	switch orderParam {
	case "newest":
		order = ledger.NewestFirst
	case "chronological":
		order = ledger.Chronological
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ORDER", Message: "order debe ser newest o chronological"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "limit y offset deben ser enteros"})
	}
	entries, err := read(c.Context(), GetSessionKey(c), order)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewLogResponse(log, orderParam, entries, page))
}

// CreateCategory godoc
// @Summary      Crear categoría
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "Nombre de la categoría"
// @Success      201   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ledger/categories [post]
func (h *LedgerHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	key := GetSessionKey(c)
	if err := h.svc.AddCategory(c.Context(), key, in.Name); err != nil {
		return writeError(c, err)
	}
	return h.inventoryStatus(c, key, fiber.StatusCreated)
}

// CreateProduct godoc
// @Summary      Agregar producto a una categoría (cantidad 0)
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "category, product"
// @Success      201   {object}  dto.InventoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/ledger/products [post]
func (h *LedgerHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	key := GetSessionKey(c)
	if err := h.svc.AddProduct(c.Context(), key, in.Category, in.Product); err != nil {
		return writeError(c, err)
	}
	return h.inventoryStatus(c, key, fiber.StatusCreated)
}

func (h *LedgerHandler) inventoryStatus(c *fiber.Ctx, key string, status int) error {
	cats, err := h.svc.Inventory(c.Context(), key)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(status).JSON(dto.NewInventoryResponse(cats))
}

// RecordShipment godoc
// @Summary      Registrar envío (entrada de stock)
// @Description  Crea la categoría o el producto si no existen.
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequest  true  "category, product, quantity"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ledger/shipments [post]
func (h *LedgerHandler) RecordShipment(c *fiber.Ctx) error {
	return h.movement(c, h.svc.RecordShipment)
}

// RecordOrder godoc
// @Summary      Registrar pedido (salida de stock)
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequest  true  "category, product, quantity"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse  "INSUFFICIENT_STOCK con available y requested"
// @Router       /api/ledger/orders [post]
func (h *LedgerHandler) RecordOrder(c *fiber.Ctx) error {
	return h.movement(c, h.svc.RecordOrder)
}

type movementFunc func(ctx context.Context, key, category, product string, quantity int) (inventory.MovementResult, error)

func (h *LedgerHandler) movement(c *fiber.Ctx, apply movementFunc) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	qty := ledger.ParseQuantity(string(in.Quantity))
	res, err := apply(c.Context(), GetSessionKey(c), in.Category, in.Product, qty)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{
		Entry:    dto.NewLogEntryResponse(res.Entry),
		Quantity: res.Quantity,
	})
}

// ClearShipments godoc
// @Summary      Vaciar registro de envíos
// @Description  Requiere confirm=true; sin confirmación responde 428 con la cantidad de entradas.
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        confirm  query  bool  true  "confirmación explícita"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse  "EMPTY_LOG"
// @Failure      428  {object}  dto.ErrorResponse  "CONFIRMATION_REQUIRED"
// @Router       /api/ledger/shipments [delete]
func (h *LedgerHandler) ClearShipments(c *fiber.Ctx) error {
	return h.clear(c, h.svc.ClearShipments)
}

// ClearOrders godoc
// @Summary      Vaciar registro de pedidos
// @Description  Requiere confirm=true; sin confirmación responde 428 con la cantidad de entradas.
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        confirm  query  bool  true  "confirmación explícita"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse  "EMPTY_LOG"
// @Failure      428  {object}  dto.ErrorResponse  "CONFIRMATION_REQUIRED"
// @Router       /api/ledger/orders [delete]
func (h *LedgerHandler) ClearOrders(c *fiber.Ctx) error {
	return h.clear(c, h.svc.ClearOrders)
}

type clearFunc func(ctx context.Context, key string, confirm ledger.Confirm) error

func (h *LedgerHandler) clear(c *fiber.Ctx, apply clearFunc) error {
	confirmed := c.QueryBool("confirm", false)
	entries := 0
	err := apply(c.Context(), GetSessionKey(c), func(_ string, n int) bool {
		entries = n
		return confirmed
	})
	if err != nil {
		if le, ok := domain.AsLedgerError(err); ok && le.Kind == domain.ErrNotConfirmed {
			return c.Status(fiber.StatusPreconditionRequired).JSON(dto.ErrorResponse{
				Code:    "CONFIRMATION_REQUIRED",
				Message: "repita la petición con confirm=true para borrar " + le.Log,
				Details: map[string]any{"log": le.Log, "entries": entries},
			})
		}
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetSnapshot godoc
// @Summary      Exportar el estado persistido
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  entity.Snapshot
// @Router       /api/ledger/snapshot [get]
func (h *LedgerHandler) GetSnapshot(c *fiber.Ctx) error {
	snap, err := h.svc.Snapshot(c.Context(), GetSessionKey(c))
	if err != nil {
		return writeError(c, err)
	}
	payload, err := snap.Encode()
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(payload)
}

// PutSnapshot godoc
// @Summary      Importar un estado exportado
// @Description  Reemplaza la sesión. Los registros en formato antiguo se descartan (migrated=true).
// @Tags         ledger
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  entity.Snapshot  true  "Snapshot"
// @Success      200   {object}  dto.ImportResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/ledger/snapshot [put]
func (h *LedgerHandler) PutSnapshot(c *fiber.Ctx) error {
	l, err := h.svc.Import(c.Context(), GetSessionKey(c), c.Body())
	if err != nil {
		return writeError(c, err)
	}
	snap := l.Serialize()
	return c.JSON(dto.ImportResponse{
		Migrated:   l.Migrated(),
		Categories: len(snap.Inventory),
		Shipments:  len(snap.Shipment),
		Orders:     len(snap.Order),
	})
}

// Reset godoc
// @Summary      Reiniciar al catálogo por defecto
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryResponse
// @Router       /api/ledger/reset [post]
func (h *LedgerHandler) Reset(c *fiber.Ctx) error {
	key := GetSessionKey(c)
	if err := h.svc.Reset(c.Context(), key); err != nil {
		return writeError(c, err)
	}
	return h.inventoryStatus(c, key, fiber.StatusOK)
}

// Report godoc
// @Summary      Reporte PDF de stock
// @Tags         ledger
// @Security     Bearer
// @Produce      application/pdf
// @Param        title  query  string  false  "Título del reporte"
// @Success      200
// @Router       /api/ledger/report.pdf [get]
func (h *LedgerHandler) Report(c *fiber.Ctx) error {
	out, err := h.svc.Report(c.Context(), GetSessionKey(c), c.Query("title", "Inventario"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="inventario.pdf"`)
	return c.Send(out)
}
