package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-ledger/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Ledger     *inventory.Service
	StorageKey string // clave base del ledger
	JWTSecret  string // vacío = rutas sin autenticación, una sola sesión compartida
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	handlers := []fiber.Handler{}
	if deps.JWTSecret != "" {
		handlers = append(handlers, AuthMiddleware(deps.JWTSecret))
	}
	handlers = append(handlers, SessionMiddleware(deps.StorageKey))

	g := api.Group("/ledger", handlers...)
	h := NewLedgerHandler(deps.Ledger)

	g.Get("/inventory", h.Inventory)
	g.Post("/categories", h.CreateCategory)
	g.Post("/products", h.CreateProduct)

	g.Get("/shipments", h.Shipments)
	g.Post("/shipments", h.RecordShipment)
	g.Delete("/shipments", h.ClearShipments)

	g.Get("/orders", h.Orders)
	g.Post("/orders", h.RecordOrder)
	g.Delete("/orders", h.ClearOrders)

	g.Get("/snapshot", h.GetSnapshot)
	g.Put("/snapshot", h.PutSnapshot)
	g.Post("/reset", h.Reset)
	g.Get("/report.pdf", h.Report)
}
