package repositories

import (
	"context"
	"errors"
	"time"

	"cantina/internal/models"
)

var ErrDrawerNotFound = errors.New("cash drawer not found")

// CashDrawerRepository defines the interface for cash drawer session
// database operations.
type CashDrawerRepository interface {
	Create(ctx context.Context, drawer *models.CashDrawer) error
	GetByID(ctx context.Context, id uint) (*models.CashDrawer, error)

	// FindOpenBySeller returns the seller's drawer with no closing
	// timestamp, or ErrDrawerNotFound
	FindOpenBySeller(ctx context.Context, sellerID uint) (*models.CashDrawer, error)

	// Close sets the closing balance and timestamp. The WHERE clause
	// matches only open drawers, so a re-close matches zero rows.
	Close(ctx context.Context, id uint, closingBalance float64, closedAt time.Time) error

	// AppendSale pushes a sale id onto the drawer's list via a single
	// atomic array_append
	AppendSale(ctx context.Context, drawerID uint, saleID uint) error

	List(ctx context.Context) ([]models.CashDrawer, error)
}
