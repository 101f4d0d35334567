package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cantina/internal/models"

	"gorm.io/gorm"
)

type cashDrawerRepository struct {
	db *gorm.DB
}

// NewCashDrawerRepository creates a new instance of CashDrawerRepository.
func NewCashDrawerRepository(db *gorm.DB) CashDrawerRepository {
	return &cashDrawerRepository{db: db}
}

func (r *cashDrawerRepository) Create(ctx context.Context, drawer *models.CashDrawer) error {
	if err := r.db.WithContext(ctx).Create(drawer).Error; err != nil {
		return fmt.Errorf("failed to create cash drawer: %w", err)
	}
	return nil
}

func (r *cashDrawerRepository) GetByID(ctx context.Context, id uint) (*models.CashDrawer, error) {
	var drawer models.CashDrawer
	if err := r.db.WithContext(ctx).First(&drawer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDrawerNotFound
		}
		return nil, fmt.Errorf("failed to get cash drawer: %w", err)
	}
	return &drawer, nil
}

func (r *cashDrawerRepository) FindOpenBySeller(ctx context.Context, sellerID uint) (*models.CashDrawer, error) {
	var drawer models.CashDrawer
	err := r.db.WithContext(ctx).
		Where("seller_id = ? AND closed_at IS NULL", sellerID).
		First(&drawer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDrawerNotFound
		}
		return nil, fmt.Errorf("failed to find open cash drawer: %w", err)
	}
	return &drawer, nil
}

func (r *cashDrawerRepository) Close(ctx context.Context, id uint, closingBalance float64, closedAt time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.CashDrawer{}).
		Where("id = ? AND closed_at IS NULL", id).
		Updates(map[string]interface{}{
			"closing_balance": closingBalance,
			"closed_at":       closedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to close cash drawer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrDrawerNotFound
	}
	return nil
}

func (r *cashDrawerRepository) AppendSale(ctx context.Context, drawerID uint, saleID uint) error {
	result := r.db.WithContext(ctx).Model(&models.CashDrawer{}).
		Where("id = ?", drawerID).
		UpdateColumn("sales_ids", gorm.Expr("array_append(sales_ids, ?)", int64(saleID)))
	if result.Error != nil {
		return fmt.Errorf("failed to add sale to cash drawer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrDrawerNotFound
	}
	return nil
}

func (r *cashDrawerRepository) List(ctx context.Context) ([]models.CashDrawer, error) {
	var drawers []models.CashDrawer
	if err := r.db.WithContext(ctx).Order("id desc").Find(&drawers).Error; err != nil {
		return nil, fmt.Errorf("failed to list cash drawers: %w", err)
	}
	return drawers, nil
}
