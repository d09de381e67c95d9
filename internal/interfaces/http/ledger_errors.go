package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-ledger/internal/application/dto"
	"github.com/jhoicas/Inventario-ledger/internal/domain"
)

// writeError traduce los errores del ledger a respuestas HTTP.
func writeError(c *fiber.Ctx, err error) error {
	le, ok := domain.AsLedgerError(err)
	if !ok {
		if errors.Is(err, domain.ErrInvalidSnapshot) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "INVALID_SNAPSHOT", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	resp := dto.ErrorResponse{Message: le.Error()}
	status := fiber.StatusBadRequest
	switch le.Kind {
	case domain.ErrEmptyInput:
		resp.Code = "EMPTY_INPUT"
	case domain.ErrMissingCategory:
		resp.Code = "MISSING_CATEGORY"
	case domain.ErrMissingProduct:
		resp.Code = "MISSING_PRODUCT"
	case domain.ErrInvalidQuantity:
		resp.Code = "INVALID_QUANTITY"
	case domain.ErrDuplicateCategory:
		status, resp.Code = fiber.StatusConflict, "DUPLICATE_CATEGORY"
	case domain.ErrDuplicateProduct:
		status, resp.Code = fiber.StatusConflict, "DUPLICATE_PRODUCT"
	case domain.ErrCategoryNotFound:
		status, resp.Code = fiber.StatusNotFound, "CATEGORY_NOT_FOUND"
	case domain.ErrInsufficientStock:
		status, resp.Code = fiber.StatusConflict, "INSUFFICIENT_STOCK"
		resp.Details = map[string]any{
			"category":  le.Category,
			"product":   le.Product,
			"available": le.Available,
			"requested": le.Requested,
		}
	case domain.ErrEmptyLog:
		status, resp.Code = fiber.StatusConflict, "EMPTY_LOG"
		resp.Details = map[string]any{"log": le.Log}
	case domain.ErrNotConfirmed:
		status, resp.Code = fiber.StatusPreconditionRequired, "CONFIRMATION_REQUIRED"
		resp.Details = map[string]any{"log": le.Log}
	default:
		status, resp.Code = fiber.StatusInternalServerError, "INTERNAL"
	}
	return c.Status(status).JSON(resp)
}
