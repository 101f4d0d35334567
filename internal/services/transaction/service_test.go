package transaction

import (
	"context"
	"testing"

	"cantina/internal/models"
	"cantina/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockTransactionRepo struct {
	mock.Mock
}

func (m *MockTransactionRepo) Create(ctx context.Context, transaction *models.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepo) GetByID(ctx context.Context, id uint) (*models.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockTransactionRepo) List(ctx context.Context) ([]models.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *MockTransactionRepo) ListByUser(ctx context.Context, userID uint) ([]models.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *MockTransactionRepo) SetReviewed(ctx context.Context, id uint, status string, note *string, reviewerID uint) error {
	args := m.Called(ctx, id, status, note, reviewerID)
	return args.Error(0)
}

func (m *MockTransactionRepo) AdjustBalance(ctx context.Context, userID uint, field models.BalanceField, delta float64) error {
	args := m.Called(ctx, userID, field, delta)
	return args.Error(0)
}

func (m *MockTransactionRepo) CountPending(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepo) ExecuteInTransaction(ctx context.Context, fn func(repositories.TransactionRepository) error) error {
	args := m.Called(ctx, mock.Anything)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(m)
}

func adminClaims() *models.UserClaims {
	return &models.UserClaims{
		UserID:      1,
		Username:    "admin",
		Role:        models.RoleAdmin,
		Permissions: models.GetDefaultPermissions(models.RoleAdmin),
	}
}

func customerClaims() *models.UserClaims {
	return &models.UserClaims{UserID: 7, Username: "cliente", Role: models.RoleCustomer}
}

func TestTransactionService_Create(t *testing.T) {
	tests := []struct {
		name    string
		input   CreateInput
		wantErr error
	}{
		{
			name:  "credit top up request",
			input: CreateInput{Type: models.TransactionTypeCreditAdd, Amount: 50, ReceiptData: "data:image/png;base64,..."},
		},
		{
			name:  "debt payment request",
			input: CreateInput{Type: models.TransactionTypeDebtPayment, Amount: 25},
		},
		{
			name:    "unknown type rejected",
			input:   CreateInput{Type: "withdrawal", Amount: 50},
			wantErr: ErrInvalidType,
		},
		{
			name:    "zero amount rejected",
			input:   CreateInput{Type: models.TransactionTypeCreditAdd, Amount: 0},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative amount rejected",
			input:   CreateInput{Type: models.TransactionTypeCreditAdd, Amount: -10},
			wantErr: ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockTransactionRepo)
			if tt.wantErr == nil {
				repo.On("Create", mock.Anything, mock.Anything).Return(nil)
			}

			transaction, err := NewService(repo).Create(context.Background(), customerClaims(), tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, models.TransactionStatusPending, transaction.Status)
			assert.Equal(t, uint(7), transaction.UserID)
			assert.NotEmpty(t, transaction.Reference)
			repo.AssertExpectations(t)
		})
	}
}

func TestTransactionService_Review(t *testing.T) {
	pending := func(txType string) *models.Transaction {
		return &models.Transaction{
			Reference: "ref-1",
			UserID:    7,
			Type:      txType,
			Amount:    50,
			Status:    models.TransactionStatusPending,
		}
	}

	t.Run("approving a credit add funds the customer", func(t *testing.T) {
		repo := new(MockTransactionRepo)
		tr := pending(models.TransactionTypeCreditAdd)
		tr.ID = 20
		repo.On("ExecuteInTransaction", mock.Anything, mock.Anything).Return(nil)
		repo.On("GetByID", mock.Anything, uint(20)).Return(tr, nil)
		repo.On("SetReviewed", mock.Anything, uint(20), models.TransactionStatusApproved, (*string)(nil), uint(1)).Return(nil)
		repo.On("AdjustBalance", mock.Anything, uint(7), models.BalanceCredit, 50.0).Return(nil)

		err := NewService(repo).Review(context.Background(), adminClaims(), 20, models.TransactionStatusApproved, nil)
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("approving a debt payment shrinks the debt", func(t *testing.T) {
		repo := new(MockTransactionRepo)
		tr := pending(models.TransactionTypeDebtPayment)
		tr.ID = 21
		note := "comprovante ok"
		repo.On("ExecuteInTransaction", mock.Anything, mock.Anything).Return(nil)
		repo.On("GetByID", mock.Anything, uint(21)).Return(tr, nil)
		repo.On("SetReviewed", mock.Anything, uint(21), models.TransactionStatusApproved, &note, uint(1)).Return(nil)
		repo.On("AdjustBalance", mock.Anything, uint(7), models.BalanceDebt, -50.0).Return(nil)

		err := NewService(repo).Review(context.Background(), adminClaims(), 21, models.TransactionStatusApproved, &note)
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("rejection leaves balances untouched", func(t *testing.T) {
		repo := new(MockTransactionRepo)
		tr := pending(models.TransactionTypeCreditAdd)
		tr.ID = 22
		repo.On("ExecuteInTransaction", mock.Anything, mock.Anything).Return(nil)
		repo.On("GetByID", mock.Anything, uint(22)).Return(tr, nil)
		repo.On("SetReviewed", mock.Anything, uint(22), models.TransactionStatusRejected, (*string)(nil), uint(1)).Return(nil)

		err := NewService(repo).Review(context.Background(), adminClaims(), 22, models.TransactionStatusRejected, nil)
		assert.NoError(t, err)
		repo.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("second review is rejected", func(t *testing.T) {
		repo := new(MockTransactionRepo)
		tr := pending(models.TransactionTypeCreditAdd)
		tr.ID = 23
		tr.Status = models.TransactionStatusApproved
		repo.On("ExecuteInTransaction", mock.Anything, mock.Anything).Return(nil)
		repo.On("GetByID", mock.Anything, uint(23)).Return(tr, nil)

		err := NewService(repo).Review(context.Background(), adminClaims(), 23, models.TransactionStatusApproved, nil)
		assert.ErrorIs(t, err, ErrAlreadyReviewed)
		repo.AssertNotCalled(t, "SetReviewed", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("only admins review", func(t *testing.T) {
		repo := new(MockTransactionRepo)
		err := NewService(repo).Review(context.Background(), customerClaims(), 20, models.TransactionStatusApproved, nil)
		assert.ErrorIs(t, err, ErrAdminRequired)
		repo.AssertNotCalled(t, "ExecuteInTransaction", mock.Anything, mock.Anything)
	})

	t.Run("invalid status is rejected up front", func(t *testing.T) {
		repo := new(MockTransactionRepo)
		err := NewService(repo).Review(context.Background(), adminClaims(), 20, "maybe", nil)
		assert.ErrorIs(t, err, ErrInvalidStatus)
		repo.AssertNotCalled(t, "ExecuteInTransaction", mock.Anything, mock.Anything)
	})

	t.Run("unknown transaction", func(t *testing.T) {
		repo := new(MockTransactionRepo)
		repo.On("ExecuteInTransaction", mock.Anything, mock.Anything).Return(nil)
		repo.On("GetByID", mock.Anything, uint(99)).Return(nil, repositories.ErrTransactionNotFound)

		err := NewService(repo).Review(context.Background(), adminClaims(), 99, models.TransactionStatusApproved, nil)
		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})
}

func TestTransactionService_List(t *testing.T) {
	t.Run("admin sees all", func(t *testing.T) {
		repo := new(MockTransactionRepo)
		repo.On("List", mock.Anything).Return([]models.Transaction{{Reference: "a"}, {Reference: "b"}}, nil)

		list, err := NewService(repo).List(context.Background(), adminClaims())
		assert.NoError(t, err)
		assert.Len(t, list, 2)
		repo.AssertNotCalled(t, "ListByUser", mock.Anything, mock.Anything)
	})

	t.Run("customer sees own", func(t *testing.T) {
		repo := new(MockTransactionRepo)
		repo.On("ListByUser", mock.Anything, uint(7)).Return([]models.Transaction{{Reference: "a", UserID: 7}}, nil)

		list, err := NewService(repo).List(context.Background(), customerClaims())
		assert.NoError(t, err)
		assert.Len(t, list, 1)
	})
}

func TestTransactionService_CountPending(t *testing.T) {
	repo := new(MockTransactionRepo)
	repo.On("CountPending", mock.Anything).Return(int64(3), nil)

	count, err := NewService(repo).CountPending(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
