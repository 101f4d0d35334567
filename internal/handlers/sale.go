package handlers

import (
	"errors"

	"cantina/internal/services/sale"
	"cantina/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type SaleHandler struct {
	saleService sale.Service
}

func NewSaleHandler(saleService sale.Service) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// CreateSale records a completed sale and applies its stock and balance
// effects.
func (h *SaleHandler) CreateSale(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input sale.CreateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	created, err := h.saleService.Create(c.Context(), claims, input)
	if err != nil {
		switch {
		case errors.Is(err, sale.ErrPermissionDenied):
			return utils.Forbidden(c, "Seller access required")
		case errors.Is(err, sale.ErrInvalidSale):
			return utils.BadRequest(c, "Invalid sale data")
		default:
			return utils.InternalError(c, "Failed to create sale")
		}
	}
	return utils.Created(c, created)
}

// ListSales returns all sales for admins, the caller's own otherwise.
func (h *SaleHandler) ListSales(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	sales, err := h.saleService.List(c.Context(), claims)
	if err != nil {
		return utils.InternalError(c, "Failed to fetch sales")
	}
	return utils.Success(c, sales)
}

// CancelSale reverses a sale exactly once.
func (h *SaleHandler) CancelSale(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	saleID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid sale id")
	}

	var input struct {
		Reason string `json:"reason"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	if err := h.saleService.Cancel(c.Context(), claims, saleID, input.Reason); err != nil {
		switch {
		case errors.Is(err, sale.ErrPermissionDenied):
			return utils.Forbidden(c, "Seller access required")
		case errors.Is(err, sale.ErrSaleNotFound):
			return utils.NotFound(c, "Sale not found")
		case errors.Is(err, sale.ErrAlreadyCancelled):
			return utils.BadRequest(c, "Sale already cancelled")
		default:
			return utils.InternalError(c, "Failed to cancel sale")
		}
	}
	return utils.Success(c, fiber.Map{"success": true})
}
