// Package sale implements the sale lifecycle: created completed, cancelled
// at most once. Each transition applies its stock and balance effects
// through single atomic column increments, and the whole multi-step
// sequence commits or rolls back as one database transaction.
package sale

import (
	"context"
	"errors"
	"fmt"

	"cantina/internal/models"
	"cantina/internal/repositories"

	"github.com/google/uuid"
)

type Service interface {
	// Create persists a completed sale, decrements stock per item and
	// applies the payment method's balance effect on the customer.
	Create(ctx context.Context, claims *models.UserClaims, input CreateInput) (*models.Sale, error)

	// Cancel reverses a sale exactly: stock back, balance back, status
	// cancelled. Cancelling twice is an error, never a no-op.
	Cancel(ctx context.Context, claims *models.UserClaims, saleID uint, reason string) error

	// List returns all sales for admins, and only the caller's own
	// sales for everyone else.
	List(ctx context.Context, claims *models.UserClaims) ([]models.Sale, error)
}

type service struct {
	repo repositories.SaleRepository
}

// NewService creates a new sale service.
func NewService(repo repositories.SaleRepository) Service {
	if repo == nil {
		panic("repo is required")
	}
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, claims *models.UserClaims, input CreateInput) (*models.Sale, error) {
	if !claims.CanSell() {
		return nil, ErrPermissionDenied
	}
	if input.CustomerID == 0 || len(input.Items) == 0 {
		return nil, ErrInvalidSale
	}

	items := make([]models.SaleItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, models.SaleItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	sale := &models.Sale{
		Reference:     uuid.NewString(),
		SellerID:      claims.UserID,
		CustomerID:    input.CustomerID,
		Items:         items,
		Total:         input.Total,
		PaymentMethod: input.PaymentMethod,
		Status:        models.SaleStatusCompleted,
	}

	err := s.repo.ExecuteInTransaction(ctx, func(tx repositories.SaleRepository) error {
		if err := tx.Create(ctx, sale); err != nil {
			return err
		}

		// Negative stock is allowed: it flags "needs restock" instead of
		// blocking the sale.
		for _, item := range sale.Items {
			if err := tx.AdjustStock(ctx, item.ProductID, -item.Quantity); err != nil {
				return err
			}
		}

		return s.applyBalanceEffect(ctx, tx, sale, false)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}

	return sale, nil
}

func (s *service) Cancel(ctx context.Context, claims *models.UserClaims, saleID uint, reason string) error {
	if !claims.CanSell() {
		return ErrPermissionDenied
	}

	err := s.repo.ExecuteInTransaction(ctx, func(tx repositories.SaleRepository) error {
		sale, err := tx.GetByID(ctx, saleID)
		if err != nil {
			if errors.Is(err, repositories.ErrSaleNotFound) {
				return ErrSaleNotFound
			}
			return err
		}

		if sale.Status == models.SaleStatusCancelled {
			return ErrAlreadyCancelled
		}

		// Exact inverse of creation. Additive deltas commute, so the
		// restore is correct regardless of stock changes from other
		// sales in between.
		for _, item := range sale.Items {
			if err := tx.AdjustStock(ctx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}

		if err := s.applyBalanceEffect(ctx, tx, sale, true); err != nil {
			return err
		}

		return tx.MarkCancelled(ctx, sale.ID, reason)
	})
	if err != nil {
		if errors.Is(err, ErrSaleNotFound) || errors.Is(err, ErrAlreadyCancelled) {
			return err
		}
		return fmt.Errorf("failed to cancel sale: %w", err)
	}
	return nil
}

func (s *service) List(ctx context.Context, claims *models.UserClaims) ([]models.Sale, error) {
	if claims.IsAdmin() {
		return s.repo.List(ctx)
	}
	return s.repo.ListByCustomer(ctx, claims.UserID)
}

// applyBalanceEffect applies the payment method's balance effect, or its
// inverse when reversing a cancellation. Fiado grows the customer's debt;
// credit spends down the prepaid balance; cash and pix settle immediately
// and touch no balance.
func (s *service) applyBalanceEffect(ctx context.Context, tx repositories.SaleRepository, sale *models.Sale, reverse bool) error {
	amount := sale.Total
	if reverse {
		amount = -amount
	}

	switch sale.PaymentMethod {
	case models.PaymentMethodFiado:
		return tx.AdjustBalance(ctx, sale.CustomerID, models.BalanceDebt, amount)
	case models.PaymentMethodCredit:
		return tx.AdjustBalance(ctx, sale.CustomerID, models.BalanceCredit, -amount)
	default:
		return nil
	}
}
