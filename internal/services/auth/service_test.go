package auth

import (
	"context"
	"os"
	"testing"

	"cantina/internal/models"
	"cantina/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) GetByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepo) List() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepo) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepo) UpdateRole(userID uint, role string) error {
	args := m.Called(userID, role)
	return args.Error(0)
}

func (m *MockUserRepo) UpdateTheme(userID uint, theme string) error {
	args := m.Called(userID, theme)
	return args.Error(0)
}

func (m *MockUserRepo) UpdateNotifications(userID uint, enabled bool) error {
	args := m.Called(userID, enabled)
	return args.Error(0)
}

func (m *MockUserRepo) AdjustBalance(ctx context.Context, userID uint, field models.BalanceField, delta float64) error {
	args := m.Called(ctx, userID, field, delta)
	return args.Error(0)
}

func (m *MockUserRepo) IncrementTokenVersion(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepo) ListNotifiable(role string, debtorsOnly bool) ([]models.User, error) {
	args := m.Called(role, debtorsOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name      string
		username  string
		password  string
		setupMock func(*MockUserRepo)
		wantErr   error
	}{
		{
			name:     "successful registration",
			username: "maria",
			password: "segredo1",
			setupMock: func(repo *MockUserRepo) {
				repo.On("GetByUsername", "maria").Return(nil, repositories.ErrUserNotFound)
				repo.On("Create", mock.Anything).Return(nil)
			},
		},
		{
			name:     "duplicate username",
			username: "maria",
			password: "segredo1",
			setupMock: func(repo *MockUserRepo) {
				repo.On("GetByUsername", "maria").Return(&models.User{Username: "maria"}, nil)
			},
			wantErr: ErrUsernameTaken,
		},
		{
			name:     "username too short",
			username: "ma",
			password: "segredo1",
			wantErr:  ErrInvalidInput,
		},
		{
			name:     "password too short",
			username: "maria",
			password: "abc",
			wantErr:  ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepo)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			user, access, refresh, err := NewService(repo).Register(tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "Create", mock.Anything)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, models.RoleCustomer, user.Role)
			assert.NotEmpty(t, access)
			assert.NotEmpty(t, refresh)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.password)))
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("segredo1"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	stored := &models.User{
		Username:     "maria",
		PasswordHash: string(hashed),
		Role:         models.RoleCustomer,
		TokenVersion: 1,
	}
	stored.ID = 7

	t.Run("valid credentials", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByUsername", "maria").Return(stored, nil)

		user, access, refresh, err := NewService(repo).Login("maria", "segredo1")
		assert.NoError(t, err)
		assert.Equal(t, uint(7), user.ID)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByUsername", "maria").Return(stored, nil)

		_, _, _, err := NewService(repo).Login("maria", "errada1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := new(MockUserRepo)
		repo.On("GetByUsername", "ninguem").Return(nil, repositories.ErrUserNotFound)

		_, _, _, err := NewService(repo).Login("ninguem", "segredo1")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_Logout(t *testing.T) {
	repo := new(MockUserRepo)
	repo.On("IncrementTokenVersion", uint(7)).Return(nil)

	err := NewService(repo).Logout(7)
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestAuthService_RefreshTokens(t *testing.T) {
	t.Run("garbage token is rejected", func(t *testing.T) {
		repo := new(MockUserRepo)
		_, _, err := NewService(repo).RefreshTokens("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidRefresh)
	})
}
