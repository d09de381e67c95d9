package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-ledger/internal/application/dto"
	"github.com/jhoicas/Inventario-ledger/internal/application/inventory"
	"github.com/jhoicas/Inventario-ledger/internal/domain/ledger"
	"github.com/jhoicas/Inventario-ledger/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Inventario-ledger/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Inventario-ledger/pkg/jwt"
	"github.com/jhoicas/Inventario-ledger/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "inventario-ledger-test"
	testKey       = "inventoryAppData"
)

type stubReports struct{}

func (stubReports) GenerateStockReport(context.Context, inventory.ReportData) ([]byte, error) {
	return []byte("%PDF-1.3 stub"), nil
}

// buildTestApp arma la app con el store en memoria. jwtSecret vacío = sin autenticación.
func buildTestApp(jwtSecret string) *fiber.App {
	svc := inventory.NewService(
		memory.NewSnapshotStore(),
		ledger.ClockFunc(func() string { return "10/16/2026, 9:00:00 AM" }),
		stubReports{},
		nil,
	)
	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.Nop()))
	apphttp.Router(app, apphttp.RouterDeps{Ledger: svc, StorageKey: testKey, JWTSecret: jwtSecret})
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, body, token string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestInventory_CatalogoPorDefecto(t *testing.T) {
	app := buildTestApp("")
	resp := doRequest(t, app, http.MethodGet, "/api/ledger/inventory", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))

	inv := decode[dto.InventoryResponse](t, resp)
	require.Len(t, inv.Categories, 2)
	assert.Equal(t, "Fruits", inv.Categories[0].Name)
	assert.Equal(t, 59, inv.TotalUnits)
}

func TestCreateCategory_DuplicadoDevuelve409(t *testing.T) {
	app := buildTestApp("")
	resp := doRequest(t, app, http.MethodPost, "/api/ledger/categories", `{"name":"  Dairy "}`, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	inv := decode[dto.InventoryResponse](t, resp)
	assert.Equal(t, "Dairy", inv.Categories[2].Name)

	resp = doRequest(t, app, http.MethodPost, "/api/ledger/categories", `{"name":"Dairy"}`, "")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE_CATEGORY", decode[dto.ErrorResponse](t, resp).Code)

	resp = doRequest(t, app, http.MethodPost, "/api/ledger/categories", `{"name":"   "}`, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "EMPTY_INPUT", decode[dto.ErrorResponse](t, resp).Code)
}

func TestCreateProduct_CategoriaInexistente(t *testing.T) {
	app := buildTestApp("")
	resp := doRequest(t, app, http.MethodPost, "/api/ledger/products", `{"category":"Dairy","product":"Milk"}`, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "CATEGORY_NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}

func TestMovimientos_EnvioYPedido(t *testing.T) {
	app := buildTestApp("")

	resp := doRequest(t, app, http.MethodPost, "/api/ledger/shipments", `{"category":"Fruits","product":"Apples","quantity":"5"}`, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	mv := decode[dto.MovementResponse](t, resp)
	assert.Equal(t, 15, mv.Quantity)
	assert.Equal(t, "10/16/2026, 9:00:00 AM", mv.Entry.Timestamp)

	resp = doRequest(t, app, http.MethodPost, "/api/ledger/orders", `{"category":"Fruits","product":"Apples","quantity":16}`, "")
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	er := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", er.Code)
	assert.EqualValues(t, 15, er.Details["available"])
	assert.EqualValues(t, 16, er.Details["requested"])

	resp = doRequest(t, app, http.MethodPost, "/api/ledger/orders", `{"category":"Fruits","product":"Apples","quantity":"abc"}`, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_QUANTITY", decode[dto.ErrorResponse](t, resp).Code)

	resp = doRequest(t, app, http.MethodPost, "/api/ledger/orders", `{"category":"Fruits","product":"Apples","quantity":15}`, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, 0, decode[dto.MovementResponse](t, resp).Quantity)
}

func TestRegistros_OrdenYPaginacion(t *testing.T) {
	app := buildTestApp("")
	for _, q := range []string{"1", "2", "3"} {
		resp := doRequest(t, app, http.MethodPost, "/api/ledger/shipments", `{"category":"Fruits","product":"Apples","quantity":`+q+`}`, "")
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp := doRequest(t, app, http.MethodGet, "/api/ledger/shipments", "", "")
	log := decode[dto.LogResponse](t, resp)
	require.Len(t, log.Entries, 3)
	assert.Equal(t, 3, log.Entries[0].Quantity, "por defecto lo más reciente primero")

	resp = doRequest(t, app, http.MethodGet, "/api/ledger/shipments?order=chronological&limit=2&offset=1", "", "")
	log = decode[dto.LogResponse](t, resp)
	require.Len(t, log.Entries, 2)
	assert.Equal(t, 2, log.Entries[0].Quantity)
	assert.Equal(t, 3, log.Page.Total)

	resp = doRequest(t, app, http.MethodGet, "/api/ledger/orders?order=random", "", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestClear_RequiereConfirmacion(t *testing.T) {
	app := buildTestApp("")

	resp := doRequest(t, app, http.MethodDelete, "/api/ledger/orders?confirm=true", "", "")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "EMPTY_LOG", decode[dto.ErrorResponse](t, resp).Code)

	resp = doRequest(t, app, http.MethodPost, "/api/ledger/orders", `{"category":"Fruits","product":"Apples","quantity":2}`, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doRequest(t, app, http.MethodDelete, "/api/ledger/orders", "", "")
	require.Equal(t, fiber.StatusPreconditionRequired, resp.StatusCode)
	er := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "CONFIRMATION_REQUIRED", er.Code)
	assert.EqualValues(t, 1, er.Details["entries"])

	resp = doRequest(t, app, http.MethodDelete, "/api/ledger/orders?confirm=true", "", "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/api/ledger/inventory", "", "")
	inv := decode[dto.InventoryResponse](t, resp)
	assert.Equal(t, 8, inv.Categories[0].Products[0].Quantity, "borrar registros no devuelve stock")
}

func TestSnapshot_ImportarYExportar(t *testing.T) {
	app := buildTestApp("")

	legacy := `{"inventory":[{"category":"Tools","products":[{"product":"Hammer","quantity":4}]}],
		"shipment":[{"category":"Tools","products":[{"product":"Hammer","quantity":4}]}],"order":[]}`
	resp := doRequest(t, app, http.MethodPut, "/api/ledger/snapshot", legacy, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	imp := decode[dto.ImportResponse](t, resp)
	assert.True(t, imp.Migrated)
	assert.Equal(t, 1, imp.Categories)
	assert.Equal(t, 0, imp.Shipments)

	resp = doRequest(t, app, http.MethodGet, "/api/ledger/snapshot", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"inventory":[{"category":"Tools","products":[{"product":"Hammer","quantity":4}]}],"shipment":[],"order":[]}`, string(body))

	resp = doRequest(t, app, http.MethodPut, "/api/ledger/snapshot", `{roto`, "")
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestResetYReporte(t *testing.T) {
	app := buildTestApp("")
	resp := doRequest(t, app, http.MethodPost, "/api/ledger/categories", `{"name":"Dairy"}`, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doRequest(t, app, http.MethodPost, "/api/ledger/reset", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, decode[dto.InventoryResponse](t, resp).Categories, 2)

	resp = doRequest(t, app, http.MethodGet, "/api/ledger/report.pdf", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Autenticación y sesiones
// ──────────────────────────────────────────────────────────────────────────────

func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, testIssuer, 60)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return tok
}

func TestAuth_SinTokenDevuelve401(t *testing.T) {
	app := buildTestApp(testJWTSecret)

	resp := doRequest(t, app, http.MethodGet, "/api/ledger/inventory", "", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", decode[dto.ErrorResponse](t, resp).Code)

	resp = doRequest(t, app, http.MethodGet, "/api/ledger/inventory", "", "no-es-un-jwt")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", decode[dto.ErrorResponse](t, resp).Code)
}

func TestAuth_FirmaDeOtroSecretoRechazada(t *testing.T) {
	app := buildTestApp(testJWTSecret)
	tok, err := pkgjwt.Generate("otro-secreto", "user-1", testIssuer, 60)
	require.NoError(t, err)

	resp := doRequest(t, app, http.MethodGet, "/api/ledger/inventory", "", tok)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_CadaUsuarioTieneSuLedger(t *testing.T) {
	app := buildTestApp(testJWTSecret)
	alice, bob := tokenFor(t, "alice"), tokenFor(t, "bob")

	resp := doRequest(t, app, http.MethodPost, "/api/ledger/categories", `{"name":"Dairy"}`, alice)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doRequest(t, app, http.MethodGet, "/api/ledger/inventory", "", bob)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, decode[dto.InventoryResponse](t, resp).Categories, 2)

	resp = doRequest(t, app, http.MethodGet, "/api/ledger/inventory", "", alice)
	assert.Len(t, decode[dto.InventoryResponse](t, resp).Categories, 3)
}

func TestRequestLogger_RespetaRequestIDDelCliente(t *testing.T) {
	app := buildTestApp("")
	req := httptest.NewRequest(http.MethodGet, "/api/ledger/inventory", nil)
	req.Header.Set(apphttp.HeaderRequestID, "abc-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(apphttp.HeaderRequestID))
}
