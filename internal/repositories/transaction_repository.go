package repositories

import (
	"context"
	"errors"

	"cantina/internal/models"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionRepository defines the interface for credit/debt transaction
// database operations. A review's status write and balance increment run
// through ExecuteInTransaction so they commit as one unit.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	GetByID(ctx context.Context, id uint) (*models.Transaction, error)
	List(ctx context.Context) ([]models.Transaction, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Transaction, error)

	// SetReviewed records the terminal status, note and reviewer
	SetReviewed(ctx context.Context, id uint, status string, note *string, reviewerID uint) error

	// AdjustBalance applies an additive credit/debt change
	AdjustBalance(ctx context.Context, userID uint, field models.BalanceField, delta float64) error

	// CountPending returns the number of transactions awaiting review
	CountPending(ctx context.Context) (int64, error)

	// ExecuteInTransaction runs fn with a repository bound to a single
	// database transaction
	ExecuteInTransaction(ctx context.Context, fn func(TransactionRepository) error) error
}
