package repositories

import (
	"context"
	"errors"

	"cantina/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for catalog database operations.
type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id uint) (*models.Product, error)
	List() ([]models.Product, error)
	Update(product *models.Product) error
	Delete(id uint) error
	UpdateImage(id uint, imageURL string) error

	// AdjustStock applies an additive stock change as a single atomic
	// increment; a missing product is tolerated silently
	AdjustStock(ctx context.Context, productID uint, delta int) error

	// ListLowStock returns products at or below their restock threshold
	ListLowStock() ([]models.Product, error)

	// Count returns the number of catalog entries
	Count() (int64, error)
}
