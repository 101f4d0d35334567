package repositories

import (
	"context"
	"errors"

	"cantina/internal/models"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrInvalidBalanceField = errors.New("invalid balance field")
	ErrDatabaseOperation   = errors.New("database operation failed")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// GetByID retrieves a user by id, consulting the cache first
	GetByID(id uint) (*models.User, error)

	// GetByUsername retrieves a user by username
	GetByUsername(username string) (*models.User, error)

	// List retrieves all users
	List() ([]models.User, error)

	// Update saves changes to an existing user
	Update(user *models.User) error

	// UpdateRole changes a user's role
	UpdateRole(userID uint, role string) error

	// UpdateTheme changes a user's theme preference
	UpdateTheme(userID uint, theme string) error

	// UpdateNotifications toggles a user's notification opt-in
	UpdateNotifications(userID uint, enabled bool) error

	// AdjustBalance applies an additive change to credit or debt as a
	// single atomic column increment
	AdjustBalance(ctx context.Context, userID uint, field models.BalanceField, delta float64) error

	// IncrementTokenVersion invalidates all issued tokens for the user
	IncrementTokenVersion(userID uint) error

	// ListNotifiable returns users with notifications enabled, optionally
	// filtered by role or restricted to users carrying debt
	ListNotifiable(role string, debtorsOnly bool) ([]models.User, error)
}
