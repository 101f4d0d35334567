package auth

import (
	"errors"
	"log"

	"cantina/internal/models"
	"cantina/internal/repositories"
	"cantina/internal/utils"
	"cantina/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// Service resolves identities: it registers accounts, verifies credentials
// and issues the bearer tokens every core operation is gated on.
type Service interface {
	Register(username, password string) (*models.User, string, string, error)
	Login(username, password string) (*models.User, string, string, error)
	RefreshTokens(refreshToken string) (string, string, error)
	Logout(userID uint) error
	GetUserTokenVersion(userID uint) (int, error)
	GetUserByID(userID uint) (*models.User, error)
}

type service struct {
	userRepo repositories.UserRepository
}

func NewService(userRepo repositories.UserRepository) Service {
	return &service{
		userRepo: userRepo,
	}
}

func (s *service) Register(username, password string) (*models.User, string, string, error) {
	if !validation.Username(username) || !validation.Password(password) {
		return nil, "", "", ErrInvalidInput
	}

	if _, err := s.userRepo.GetByUsername(username); err == nil {
		return nil, "", "", ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", errors.New("failed to hash password")
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hashed),
		Role:         models.RoleCustomer,
		TokenVersion: 1,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, "", "", errors.New("failed to create user")
	}

	accessToken, refreshToken, err := s.tokensFor(user)
	if err != nil {
		return nil, "", "", err
	}
	return user, accessToken, refreshToken, nil
}

func (s *service) Login(username, password string) (*models.User, string, string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		log.Printf("Login failed: user not found for %q", username)
		return nil, "", "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Printf("Login failed: incorrect password for user ID %d", user.ID)
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.tokensFor(user)
	if err != nil {
		return nil, "", "", err
	}
	return user, accessToken, refreshToken, nil
}

func (s *service) RefreshTokens(refreshToken string) (string, string, error) {
	_, claims, err := utils.ParseToken(refreshToken)
	if err != nil {
		return "", "", ErrInvalidRefresh
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		return "", "", ErrInvalidRefresh
	}

	if user.TokenVersion != claims.TokenVersion {
		return "", "", ErrInvalidRefresh
	}

	return s.tokensFor(user)
}

func (s *service) Logout(userID uint) error {
	return s.userRepo.IncrementTokenVersion(userID)
}

func (s *service) GetUserTokenVersion(userID uint) (int, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return 0, err
	}
	return user.TokenVersion, nil
}

func (s *service) GetUserByID(userID uint) (*models.User, error) {
	return s.userRepo.GetByID(userID)
}

func (s *service) tokensFor(user *models.User) (string, string, error) {
	access, refresh, err := utils.GenerateTokens(&models.UserClaims{
		UserID:       user.ID,
		Username:     user.Username,
		Role:         user.Role,
		TokenVersion: user.TokenVersion,
		Permissions:  models.GetDefaultPermissions(user.Role),
	})
	if err != nil {
		log.Println("Error generating tokens:", err)
		return "", "", errors.New("error generating tokens")
	}
	return access, refresh, nil
}
