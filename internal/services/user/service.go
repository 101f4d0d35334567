// Package user implements account listing and self-service preference
// updates. Role changes are the one admin-only mutation here; balance
// mutations never happen in this package.
package user

import (
	"errors"

	"cantina/internal/models"
	"cantina/internal/repositories"
	"cantina/internal/validation"
)

type Service interface {
	List(claims *models.UserClaims) ([]models.User, error)
	Get(claims *models.UserClaims, userID uint) (*models.User, error)
	SetRole(claims *models.UserClaims, userID uint, role string) error
	SetTheme(claims *models.UserClaims, userID uint, theme string) error
	SetNotifications(claims *models.UserClaims, userID uint, enabled bool) error
}

type service struct {
	userRepo repositories.UserRepository
}

func NewService(userRepo repositories.UserRepository) Service {
	return &service{userRepo: userRepo}
}

func (s *service) List(claims *models.UserClaims) ([]models.User, error) {
	return s.userRepo.List()
}

func (s *service) Get(claims *models.UserClaims, userID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *service) SetRole(claims *models.UserClaims, userID uint, role string) error {
	if !claims.IsAdmin() {
		return ErrForbidden
	}
	if !models.ValidAssignableRole(role) {
		return ErrInvalidRole
	}
	return s.translateNotFound(s.userRepo.UpdateRole(userID, role))
}

func (s *service) SetTheme(claims *models.UserClaims, userID uint, theme string) error {
	// Theme is strictly self-service, admins included.
	if claims.UserID != userID {
		return ErrForbidden
	}
	if !validation.Theme(theme) {
		return ErrInvalidTheme
	}
	return s.translateNotFound(s.userRepo.UpdateTheme(userID, theme))
}

func (s *service) SetNotifications(claims *models.UserClaims, userID uint, enabled bool) error {
	if !claims.CanActOn(userID) {
		return ErrForbidden
	}
	return s.translateNotFound(s.userRepo.UpdateNotifications(userID, enabled))
}

func (s *service) translateNotFound(err error) error {
	if errors.Is(err, repositories.ErrUserNotFound) {
		return ErrUserNotFound
	}
	return err
}
