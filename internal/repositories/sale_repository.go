package repositories

import (
	"context"
	"errors"

	"cantina/internal/models"
)

var ErrSaleNotFound = errors.New("sale not found")

// SaleRepository defines the interface for sale database operations,
// including the stock and balance increments a sale orchestrates. All
// mutations made through an ExecuteInTransaction callback commit or roll
// back as one unit.
type SaleRepository interface {
	Create(ctx context.Context, sale *models.Sale) error
	GetByID(ctx context.Context, id uint) (*models.Sale, error)
	MarkCancelled(ctx context.Context, id uint, reason string) error
	List(ctx context.Context) ([]models.Sale, error)
	ListByCustomer(ctx context.Context, customerID uint) ([]models.Sale, error)

	// AdjustStock applies an additive stock change; a missing product is
	// tolerated silently
	AdjustStock(ctx context.Context, productID uint, delta int) error

	// AdjustBalance applies an additive credit/debt change
	AdjustBalance(ctx context.Context, userID uint, field models.BalanceField, delta float64) error

	// ExecuteInTransaction runs fn with a repository bound to a single
	// database transaction
	ExecuteInTransaction(ctx context.Context, fn func(SaleRepository) error) error
}
