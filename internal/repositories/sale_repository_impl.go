package repositories

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cantina/internal/models"
	"cantina/internal/repositories/cache"

	"gorm.io/gorm"
)

type saleRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

// NewSaleRepository creates a new instance of SaleRepository.
func NewSaleRepository(db *gorm.DB, cache *cache.CacheService) SaleRepository {
	return &saleRepository{db: db, cache: cache}
}

func (r *saleRepository) Create(ctx context.Context, sale *models.Sale) error {
	if err := r.db.WithContext(ctx).Create(sale).Error; err != nil {
		return fmt.Errorf("failed to create sale: %w", err)
	}
	return nil
}

func (r *saleRepository) GetByID(ctx context.Context, id uint) (*models.Sale, error) {
	var sale models.Sale
	if err := r.db.WithContext(ctx).Preload("Items").First(&sale, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("failed to get sale: %w", err)
	}
	return &sale, nil
}

func (r *saleRepository) MarkCancelled(ctx context.Context, id uint, reason string) error {
	result := r.db.WithContext(ctx).Model(&models.Sale{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":              models.SaleStatusCancelled,
			"cancellation_reason": reason,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to cancel sale: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSaleNotFound
	}
	return nil
}

func (r *saleRepository) List(ctx context.Context) ([]models.Sale, error) {
	var sales []models.Sale
	if err := r.db.WithContext(ctx).Preload("Items").Order("id desc").Find(&sales).Error; err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return sales, nil
}

func (r *saleRepository) ListByCustomer(ctx context.Context, customerID uint) ([]models.Sale, error) {
	var sales []models.Sale
	err := r.db.WithContext(ctx).Preload("Items").
		Where("customer_id = ?", customerID).
		Order("id desc").
		Find(&sales).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return sales, nil
}

func (r *saleRepository) AdjustStock(ctx context.Context, productID uint, delta int) error {
	return adjustStock(r.db.WithContext(ctx), productID, delta)
}

func (r *saleRepository) AdjustBalance(ctx context.Context, userID uint, field models.BalanceField, delta float64) error {
	if err := adjustBalance(r.db.WithContext(ctx), userID, field, delta); err != nil {
		return err
	}
	if r.cache != nil {
		if err := r.cache.InvalidateUser(ctx, userID); err != nil {
			log.Printf("Failed to invalidate user cache %d: %v", userID, err)
		}
	}
	return nil
}

func (r *saleRepository) ExecuteInTransaction(ctx context.Context, fn func(SaleRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&saleRepository{db: tx, cache: r.cache})
	})
}
