package handlers

import (
	"errors"
	"strconv"

	"cantina/internal/services/user"
	"cantina/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// ListUsers returns all accounts.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	users, err := h.userService.List(claims)
	if err != nil {
		return utils.InternalError(c, "Failed to fetch users")
	}
	return utils.Success(c, users)
}

// GetUser returns one account by id.
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	userID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid user id")
	}

	u, err := h.userService.Get(claims, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.InternalError(c, "Failed to fetch user")
	}
	return utils.Success(c, u)
}

// UpdateRole changes a user's role, admin only.
func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	userID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid user id")
	}

	var input struct {
		Role string `json:"role"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	if err := h.userService.SetRole(claims, userID, input.Role); err != nil {
		switch {
		case errors.Is(err, user.ErrForbidden):
			return utils.Forbidden(c, "Admin access required")
		case errors.Is(err, user.ErrInvalidRole):
			return utils.BadRequest(c, "Invalid role")
		case errors.Is(err, user.ErrUserNotFound):
			return utils.NotFound(c, "User not found")
		default:
			return utils.InternalError(c, "Failed to update role")
		}
	}
	return utils.Success(c, fiber.Map{"success": true})
}

// UpdateTheme changes the caller's theme preference.
func (h *UserHandler) UpdateTheme(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	userID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid user id")
	}

	var input struct {
		Theme string `json:"theme"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	if err := h.userService.SetTheme(claims, userID, input.Theme); err != nil {
		switch {
		case errors.Is(err, user.ErrForbidden):
			return utils.Forbidden(c, "Can only update own theme")
		case errors.Is(err, user.ErrInvalidTheme):
			return utils.BadRequest(c, "Invalid theme")
		case errors.Is(err, user.ErrUserNotFound):
			return utils.NotFound(c, "User not found")
		default:
			return utils.InternalError(c, "Failed to update theme")
		}
	}
	return utils.Success(c, fiber.Map{"success": true})
}

// UpdateNotifications toggles notification opt-in for a user.
func (h *UserHandler) UpdateNotifications(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	userID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid user id")
	}

	var input struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	if err := h.userService.SetNotifications(claims, userID, input.Enabled); err != nil {
		switch {
		case errors.Is(err, user.ErrForbidden):
			return utils.Forbidden(c, "Unauthorized")
		case errors.Is(err, user.ErrUserNotFound):
			return utils.NotFound(c, "User not found")
		default:
			return utils.InternalError(c, "Failed to update notifications")
		}
	}
	return utils.Success(c, fiber.Map{"success": true})
}
