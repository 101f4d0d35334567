package handlers

import (
	"errors"

	"cantina/internal/services/drawer"
	"cantina/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type DrawerHandler struct {
	drawerService drawer.Service
}

func NewDrawerHandler(drawerService drawer.Service) *DrawerHandler {
	return &DrawerHandler{drawerService: drawerService}
}

// OpenDrawer starts a cash drawer session for the caller.
func (h *DrawerHandler) OpenDrawer(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		OpeningBalance float64 `json:"opening_balance"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	opened, err := h.drawerService.Open(c.Context(), claims, input.OpeningBalance)
	if err != nil {
		switch {
		case errors.Is(err, drawer.ErrPermissionDenied):
			return utils.Forbidden(c, "Seller access required")
		case errors.Is(err, drawer.ErrDrawerAlreadyOpen):
			return utils.Conflict(c, "Cash drawer already open")
		default:
			return utils.InternalError(c, "Failed to open cash drawer")
		}
	}
	return utils.Created(c, opened)
}

// CurrentDrawer returns the caller's open drawer.
func (h *DrawerHandler) CurrentDrawer(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	current, err := h.drawerService.Current(c.Context(), claims)
	if err != nil {
		switch {
		case errors.Is(err, drawer.ErrPermissionDenied):
			return utils.Forbidden(c, "Seller access required")
		case errors.Is(err, drawer.ErrDrawerNotFound):
			return utils.NotFound(c, "No open cash drawer")
		default:
			return utils.InternalError(c, "Failed to get cash drawer")
		}
	}
	return utils.Success(c, current)
}

// CloseDrawer ends a session with a counted closing balance.
func (h *DrawerHandler) CloseDrawer(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	drawerID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid drawer id")
	}

	var input struct {
		ClosingBalance float64 `json:"closing_balance"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	if err := h.drawerService.Close(c.Context(), claims, drawerID, input.ClosingBalance); err != nil {
		switch {
		case errors.Is(err, drawer.ErrDrawerNotFound):
			return utils.NotFound(c, "Cash drawer not found")
		case errors.Is(err, drawer.ErrNotDrawerOwner):
			return utils.Forbidden(c, "Unauthorized")
		case errors.Is(err, drawer.ErrDrawerAlreadyClosed):
			return utils.BadRequest(c, "Cash drawer already closed")
		default:
			return utils.InternalError(c, "Failed to close cash drawer")
		}
	}
	return utils.Success(c, fiber.Map{"success": true})
}

// AddSaleToDrawer appends a sale id to an open drawer.
func (h *DrawerHandler) AddSaleToDrawer(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	drawerID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid drawer id")
	}

	var input struct {
		SaleID uint `json:"sale_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	if err := h.drawerService.AddSale(c.Context(), claims, drawerID, input.SaleID); err != nil {
		switch {
		case errors.Is(err, drawer.ErrPermissionDenied):
			return utils.Forbidden(c, "Seller access required")
		case errors.Is(err, drawer.ErrDrawerNotFound):
			return utils.NotFound(c, "Cash drawer not found")
		case errors.Is(err, drawer.ErrNotDrawerOwner):
			return utils.Forbidden(c, "Unauthorized")
		case errors.Is(err, drawer.ErrDrawerAlreadyClosed):
			return utils.BadRequest(c, "Cash drawer already closed")
		default:
			return utils.InternalError(c, "Failed to add sale to drawer")
		}
	}
	return utils.Success(c, fiber.Map{"success": true})
}

// DrawerHistory returns every drawer session, admin only.
func (h *DrawerHandler) DrawerHistory(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	drawers, err := h.drawerService.History(c.Context(), claims)
	if err != nil {
		if errors.Is(err, drawer.ErrPermissionDenied) {
			return utils.Forbidden(c, "Admin access required")
		}
		return utils.InternalError(c, "Failed to fetch drawer history")
	}
	return utils.Success(c, drawers)
}
