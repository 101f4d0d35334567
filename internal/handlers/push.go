package handlers

import (
	"errors"

	"cantina/internal/models"
	"cantina/internal/services/push"
	"cantina/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type PushHandler struct {
	pushService push.Service
}

func NewPushHandler(pushService push.Service) *PushHandler {
	return &PushHandler{pushService: pushService}
}

// Subscribe stores the caller's push subscription, replacing an existing
// one.
func (h *PushHandler) Subscribe(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		SubscriptionData models.JSON `json:"subscription_data"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	if err := h.pushService.Subscribe(c.Context(), claims, input.SubscriptionData); err != nil {
		return utils.InternalError(c, "Failed to store subscription")
	}
	return utils.Success(c, fiber.Map{"success": true})
}

// Send broadcasts a notification to a resolved audience, admin only.
func (h *PushHandler) Send(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input push.SendInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	result, err := h.pushService.Send(c.Context(), claims, input)
	if err != nil {
		switch {
		case errors.Is(err, push.ErrAdminRequired):
			return utils.Forbidden(c, "Admin access required")
		case errors.Is(err, push.ErrInvalidTarget):
			return utils.BadRequest(c, "Invalid notification target")
		default:
			return utils.InternalError(c, "Failed to send notification")
		}
	}
	return utils.Success(c, fiber.Map{
		"success":    true,
		"recipients": result.Recipients,
	})
}
