package handlers

import (
	"cantina/internal/services/catalog"
	"cantina/internal/services/transaction"
	"cantina/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// StatsHandler exposes the admin dashboard counters.
type StatsHandler struct {
	catalogService     catalog.Service
	transactionService transaction.Service
}

func NewStatsHandler(catalogService catalog.Service, transactionService transaction.Service) *StatsHandler {
	return &StatsHandler{
		catalogService:     catalogService,
		transactionService: transactionService,
	}
}

// LowStock returns products at or below their restock threshold.
func (h *StatsHandler) LowStock(c *fiber.Ctx) error {
	products, err := h.catalogService.LowStock()
	if err != nil {
		return utils.InternalError(c, "Failed to fetch low stock products")
	}
	return utils.Success(c, products)
}

// PendingTransactions returns the count of transactions awaiting review.
func (h *StatsHandler) PendingTransactions(c *fiber.Ctx) error {
	count, err := h.transactionService.CountPending(c.Context())
	if err != nil {
		return utils.InternalError(c, "Failed to count pending transactions")
	}
	return utils.Success(c, fiber.Map{"count": count})
}
