package handlers

import (
	"errors"

	"cantina/internal/services/transaction"
	"cantina/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	transactionService transaction.Service
}

func NewTransactionHandler(transactionService transaction.Service) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransaction files a pending credit top-up or debt payment request.
func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input transaction.CreateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	created, err := h.transactionService.Create(c.Context(), claims, input)
	if err != nil {
		switch {
		case errors.Is(err, transaction.ErrInvalidType):
			return utils.BadRequest(c, "Invalid transaction type")
		case errors.Is(err, transaction.ErrInvalidAmount):
			return utils.BadRequest(c, "Amount must be greater than 0")
		default:
			return utils.InternalError(c, "Failed to create transaction")
		}
	}
	return utils.Created(c, created)
}

// ListTransactions returns all transactions for admins, the caller's own
// otherwise.
func (h *TransactionHandler) ListTransactions(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	transactions, err := h.transactionService.List(c.Context(), claims)
	if err != nil {
		return utils.InternalError(c, "Failed to fetch transactions")
	}
	return utils.Success(c, transactions)
}

// ReviewTransaction approves or rejects a pending transaction, admin only.
func (h *TransactionHandler) ReviewTransaction(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	transactionID, err := parseIDParam(c, "id")
	if err != nil {
		return utils.BadRequest(c, "Invalid transaction id")
	}

	var input struct {
		Status    string  `json:"status"`
		AdminNote *string `json:"admin_note"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	err = h.transactionService.Review(c.Context(), claims, transactionID, input.Status, input.AdminNote)
	if err != nil {
		switch {
		case errors.Is(err, transaction.ErrAdminRequired):
			return utils.Forbidden(c, "Admin access required")
		case errors.Is(err, transaction.ErrTransactionNotFound):
			return utils.NotFound(c, "Transaction not found")
		case errors.Is(err, transaction.ErrAlreadyReviewed):
			return utils.BadRequest(c, "Transaction already reviewed")
		case errors.Is(err, transaction.ErrInvalidStatus):
			return utils.BadRequest(c, "Invalid review status")
		default:
			return utils.InternalError(c, "Failed to review transaction")
		}
	}
	return utils.Success(c, fiber.Map{"success": true})
}
