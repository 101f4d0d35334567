package drawer

import (
	"context"
	"testing"
	"time"

	"cantina/internal/models"
	"cantina/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockDrawerRepo struct {
	mock.Mock
}

func (m *MockDrawerRepo) Create(ctx context.Context, drawer *models.CashDrawer) error {
	args := m.Called(ctx, drawer)
	return args.Error(0)
}

func (m *MockDrawerRepo) GetByID(ctx context.Context, id uint) (*models.CashDrawer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CashDrawer), args.Error(1)
}

func (m *MockDrawerRepo) FindOpenBySeller(ctx context.Context, sellerID uint) (*models.CashDrawer, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CashDrawer), args.Error(1)
}

func (m *MockDrawerRepo) Close(ctx context.Context, id uint, closingBalance float64, closedAt time.Time) error {
	args := m.Called(ctx, id, closingBalance, closedAt)
	return args.Error(0)
}

func (m *MockDrawerRepo) AppendSale(ctx context.Context, drawerID uint, saleID uint) error {
	args := m.Called(ctx, drawerID, saleID)
	return args.Error(0)
}

func (m *MockDrawerRepo) List(ctx context.Context) ([]models.CashDrawer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CashDrawer), args.Error(1)
}

func sellerClaims() *models.UserClaims {
	return &models.UserClaims{UserID: 2, Username: "vendedor", Role: models.RoleSeller}
}

func otherSellerClaims() *models.UserClaims {
	return &models.UserClaims{UserID: 3, Username: "outro", Role: models.RoleSeller}
}

func adminClaims() *models.UserClaims {
	return &models.UserClaims{UserID: 1, Username: "admin", Role: models.RoleAdmin}
}

func openDrawer(id, sellerID uint) *models.CashDrawer {
	drawer := &models.CashDrawer{
		SellerID:       sellerID,
		OpeningBalance: 100,
		SalesIDs:       []int64{},
	}
	drawer.ID = id
	return drawer
}

func TestDrawerService_Open(t *testing.T) {
	t.Run("opens when seller has no open drawer", func(t *testing.T) {
		repo := new(MockDrawerRepo)
		repo.On("FindOpenBySeller", mock.Anything, uint(2)).Return(nil, repositories.ErrDrawerNotFound)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		drawer, err := NewService(repo).Open(context.Background(), sellerClaims(), 100)
		assert.NoError(t, err)
		assert.Equal(t, uint(2), drawer.SellerID)
		assert.Equal(t, 100.0, drawer.OpeningBalance)
		assert.True(t, drawer.Open())
		repo.AssertExpectations(t)
	})

	t.Run("second open conflicts and inserts nothing", func(t *testing.T) {
		repo := new(MockDrawerRepo)
		repo.On("FindOpenBySeller", mock.Anything, uint(2)).Return(openDrawer(5, 2), nil)

		drawer, err := NewService(repo).Open(context.Background(), sellerClaims(), 100)
		assert.ErrorIs(t, err, ErrDrawerAlreadyOpen)
		assert.Nil(t, drawer)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("customers cannot open drawers", func(t *testing.T) {
		repo := new(MockDrawerRepo)
		claims := &models.UserClaims{UserID: 7, Role: models.RoleCustomer}

		_, err := NewService(repo).Open(context.Background(), claims, 100)
		assert.ErrorIs(t, err, ErrPermissionDenied)
		repo.AssertNotCalled(t, "FindOpenBySeller", mock.Anything, mock.Anything)
	})
}

func TestDrawerService_Current(t *testing.T) {
	t.Run("returns the open drawer", func(t *testing.T) {
		repo := new(MockDrawerRepo)
		repo.On("FindOpenBySeller", mock.Anything, uint(2)).Return(openDrawer(5, 2), nil)

		drawer, err := NewService(repo).Current(context.Background(), sellerClaims())
		assert.NoError(t, err)
		assert.Equal(t, uint(5), drawer.ID)
	})

	t.Run("no open drawer", func(t *testing.T) {
		repo := new(MockDrawerRepo)
		repo.On("FindOpenBySeller", mock.Anything, uint(2)).Return(nil, repositories.ErrDrawerNotFound)

		_, err := NewService(repo).Current(context.Background(), sellerClaims())
		assert.ErrorIs(t, err, ErrDrawerNotFound)
	})
}

func TestDrawerService_Close(t *testing.T) {
	t.Run("owner closes once", func(t *testing.T) {
		repo := new(MockDrawerRepo)
		repo.On("GetByID", mock.Anything, uint(5)).Return(openDrawer(5, 2), nil)
		repo.On("Close", mock.Anything, uint(5), 230.5, mock.Anything).Return(nil)

		err := NewService(repo).Close(context.Background(), sellerClaims(), 5, 230.5)
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("admin may close another seller's drawer", func(t *testing.T) {
		repo := new(MockDrawerRepo)
		repo.On("GetByID", mock.Anything, uint(5)).Return(openDrawer(5, 2), nil)
		repo.On("Close", mock.Anything, uint(5), 230.5, mock.Anything).Return(nil)

		err := NewService(repo).Close(context.Background(), adminClaims(), 5, 230.5)
		assert.NoError(t, err)
	})

	t.Run("non owner is forbidden", func(t *testing.T) {
		repo := new(MockDrawerRepo)
		repo.On("GetByID", mock.Anything, uint(5)).Return(openDrawer(5, 2), nil)

		err := NewService(repo).Close(context.Background(), otherSellerClaims(), 5, 230.5)
		assert.ErrorIs(t, err, ErrNotDrawerOwner)
		repo.AssertNotCalled(t, "Close", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("closed drawer stays closed", func(t *testing.T) {
		repo := new(MockDrawerRepo)
		drawer := openDrawer(5, 2)
		closedAt := time.Now().UTC()
		drawer.ClosedAt = &closedAt
		repo.On("GetByID", mock.Anything, uint(5)).Return(drawer, nil)

		err := NewService(repo).Close(context.Background(), sellerClaims(), 5, 230.5)
		assert.ErrorIs(t, err, ErrDrawerAlreadyClosed)
		repo.AssertNotCalled(t, "Close", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("losing a concurrent close reports already closed", func(t *testing.T) {
		repo := new(MockDrawerRepo)
		repo.On("GetByID", mock.Anything, uint(5)).Return(openDrawer(5, 2), nil)
		repo.On("Close", mock.Anything, uint(5), 230.5, mock.Anything).Return(repositories.ErrDrawerNotFound)

		err := NewService(repo).Close(context.Background(), sellerClaims(), 5, 230.5)
		assert.ErrorIs(t, err, ErrDrawerAlreadyClosed)
	})

	t.Run("unknown drawer", func(t *testing.T) {
		repo := new(MockDrawerRepo)
		repo.On("GetByID", mock.Anything, uint(99)).Return(nil, repositories.ErrDrawerNotFound)

		err := NewService(repo).Close(context.Background(), sellerClaims(), 99, 0)
		assert.ErrorIs(t, err, ErrDrawerNotFound)
	})
}

func TestDrawerService_AddSale(t *testing.T) {
	t.Run("appends sales to own open drawer", func(t *testing.T) {
		repo := new(MockDrawerRepo)
		repo.On("GetByID", mock.Anything, uint(5)).Return(openDrawer(5, 2), nil)
		repo.On("AppendSale", mock.Anything, uint(5), uint(10)).Return(nil)
		repo.On("AppendSale", mock.Anything, uint(5), uint(11)).Return(nil)
		repo.On("AppendSale", mock.Anything, uint(5), uint(12)).Return(nil)

		svc := NewService(repo)
		for _, saleID := range []uint{10, 11, 12} {
			err := svc.AddSale(context.Background(), sellerClaims(), 5, saleID)
			assert.NoError(t, err)
		}
		repo.AssertExpectations(t)
	})

	t.Run("cannot append to another seller's drawer", func(t *testing.T) {
		repo := new(MockDrawerRepo)
		repo.On("GetByID", mock.Anything, uint(5)).Return(openDrawer(5, 2), nil)

		err := NewService(repo).AddSale(context.Background(), otherSellerClaims(), 5, 10)
		assert.ErrorIs(t, err, ErrNotDrawerOwner)
		repo.AssertNotCalled(t, "AppendSale", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cannot append to a closed drawer", func(t *testing.T) {
		repo := new(MockDrawerRepo)
		drawer := openDrawer(5, 2)
		closedAt := time.Now().UTC()
		drawer.ClosedAt = &closedAt
		repo.On("GetByID", mock.Anything, uint(5)).Return(drawer, nil)

		err := NewService(repo).AddSale(context.Background(), sellerClaims(), 5, 10)
		assert.ErrorIs(t, err, ErrDrawerAlreadyClosed)
		repo.AssertNotCalled(t, "AppendSale", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDrawerService_History(t *testing.T) {
	t.Run("admin only", func(t *testing.T) {
		repo := new(MockDrawerRepo)
		_, err := NewService(repo).History(context.Background(), sellerClaims())
		assert.ErrorIs(t, err, ErrPermissionDenied)
		repo.AssertNotCalled(t, "List", mock.Anything)
	})

	t.Run("lists every session", func(t *testing.T) {
		repo := new(MockDrawerRepo)
		repo.On("List", mock.Anything).Return([]models.CashDrawer{*openDrawer(1, 2), *openDrawer(2, 3)}, nil)

		history, err := NewService(repo).History(context.Background(), adminClaims())
		assert.NoError(t, err)
		assert.Len(t, history, 2)
	})
}
