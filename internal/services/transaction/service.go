// Package transaction implements the credit top-up / debt payment review
// flow: requests are created pending by any user and moved exactly once by
// an admin to approved or rejected. The balance effect applies only at
// approval, atomically with the status write.
package transaction

import (
	"context"
	"errors"
	"fmt"

	"cantina/internal/models"
	"cantina/internal/repositories"

	"github.com/google/uuid"
)

// CreateInput is a balance-change request with its receipt evidence.
type CreateInput struct {
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	ReceiptData string  `json:"receipt_data"`
}

type Service interface {
	Create(ctx context.Context, claims *models.UserClaims, input CreateInput) (*models.Transaction, error)

	// Review moves a pending transaction to approved or rejected. A
	// transaction can be reviewed only once; approval applies the
	// balance effect in the same database transaction.
	Review(ctx context.Context, claims *models.UserClaims, transactionID uint, status string, note *string) error

	// List returns all transactions for admins, the caller's own
	// otherwise.
	List(ctx context.Context, claims *models.UserClaims) ([]models.Transaction, error)

	// CountPending returns the number of transactions awaiting review.
	CountPending(ctx context.Context) (int64, error)
}

type service struct {
	repo repositories.TransactionRepository
}

// NewService creates a new transaction review service.
func NewService(repo repositories.TransactionRepository) Service {
	if repo == nil {
		panic("repo is required")
	}
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, claims *models.UserClaims, input CreateInput) (*models.Transaction, error) {
	if !models.ValidTransactionType(input.Type) {
		return nil, ErrInvalidType
	}
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	transaction := &models.Transaction{
		Reference:  uuid.NewString(),
		UserID:     claims.UserID,
		Type:       input.Type,
		Amount:     input.Amount,
		Status:     models.TransactionStatusPending,
		ReceiptURL: input.ReceiptData,
	}
	if err := s.repo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return transaction, nil
}

func (s *service) Review(ctx context.Context, claims *models.UserClaims, transactionID uint, status string, note *string) error {
	if !claims.IsAdmin() {
		return ErrAdminRequired
	}
	if !models.ValidReviewStatus(status) {
		return ErrInvalidStatus
	}

	err := s.repo.ExecuteInTransaction(ctx, func(tx repositories.TransactionRepository) error {
		transaction, err := tx.GetByID(ctx, transactionID)
		if err != nil {
			if errors.Is(err, repositories.ErrTransactionNotFound) {
				return ErrTransactionNotFound
			}
			return err
		}

		// A reviewed transaction is terminal. Re-approving would apply
		// the balance effect twice.
		if transaction.Status != models.TransactionStatusPending {
			return ErrAlreadyReviewed
		}

		if err := tx.SetReviewed(ctx, transaction.ID, status, note, claims.UserID); err != nil {
			return err
		}

		if status != models.TransactionStatusApproved {
			return nil
		}

		switch transaction.Type {
		case models.TransactionTypeCreditAdd:
			return tx.AdjustBalance(ctx, transaction.UserID, models.BalanceCredit, transaction.Amount)
		case models.TransactionTypeDebtPayment:
			return tx.AdjustBalance(ctx, transaction.UserID, models.BalanceDebt, -transaction.Amount)
		default:
			return ErrInvalidType
		}
	})
	if err != nil {
		if errors.Is(err, ErrTransactionNotFound) || errors.Is(err, ErrAlreadyReviewed) {
			return err
		}
		return fmt.Errorf("failed to review transaction: %w", err)
	}
	return nil
}

func (s *service) List(ctx context.Context, claims *models.UserClaims) ([]models.Transaction, error) {
	if claims.IsAdmin() {
		return s.repo.List(ctx)
	}
	return s.repo.ListByUser(ctx, claims.UserID)
}

func (s *service) CountPending(ctx context.Context) (int64, error) {
	return s.repo.CountPending(ctx)
}
