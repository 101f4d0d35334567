// Package drawer tracks cash drawer sessions: one open drawer per seller,
// opened with a counted float, accumulating sale ids, closed exactly once
// against the physical cash count.
package drawer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cantina/internal/models"
	"cantina/internal/repositories"
)

type Service interface {
	// Open starts a session. A seller with an open drawer gets a
	// conflict and no new record.
	Open(ctx context.Context, claims *models.UserClaims, openingBalance float64) (*models.CashDrawer, error)

	// Current returns the caller's open drawer.
	Current(ctx context.Context, claims *models.UserClaims) (*models.CashDrawer, error)

	// Close ends a session once. Only the owning seller or an admin may
	// close it; a closed drawer stays closed.
	Close(ctx context.Context, claims *models.UserClaims, drawerID uint, closingBalance float64) error

	// AddSale appends a sale id to an open drawer owned by the caller.
	AddSale(ctx context.Context, claims *models.UserClaims, drawerID uint, saleID uint) error

	// History returns every drawer, admin only.
	History(ctx context.Context, claims *models.UserClaims) ([]models.CashDrawer, error)
}

type service struct {
	repo repositories.CashDrawerRepository
}

// NewService creates a new cash drawer service.
func NewService(repo repositories.CashDrawerRepository) Service {
	if repo == nil {
		panic("repo is required")
	}
	return &service{repo: repo}
}

func (s *service) Open(ctx context.Context, claims *models.UserClaims, openingBalance float64) (*models.CashDrawer, error) {
	if !claims.CanSell() {
		return nil, ErrPermissionDenied
	}

	if _, err := s.repo.FindOpenBySeller(ctx, claims.UserID); err == nil {
		return nil, ErrDrawerAlreadyOpen
	} else if !errors.Is(err, repositories.ErrDrawerNotFound) {
		return nil, fmt.Errorf("failed to check open drawer: %w", err)
	}

	drawer := &models.CashDrawer{
		SellerID:       claims.UserID,
		OpeningBalance: openingBalance,
		SalesIDs:       []int64{},
	}
	if err := s.repo.Create(ctx, drawer); err != nil {
		return nil, fmt.Errorf("failed to open cash drawer: %w", err)
	}
	return drawer, nil
}

func (s *service) Current(ctx context.Context, claims *models.UserClaims) (*models.CashDrawer, error) {
	if !claims.CanSell() {
		return nil, ErrPermissionDenied
	}

	drawer, err := s.repo.FindOpenBySeller(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrDrawerNotFound) {
			return nil, ErrDrawerNotFound
		}
		return nil, fmt.Errorf("failed to get current drawer: %w", err)
	}
	return drawer, nil
}

func (s *service) Close(ctx context.Context, claims *models.UserClaims, drawerID uint, closingBalance float64) error {
	drawer, err := s.repo.GetByID(ctx, drawerID)
	if err != nil {
		if errors.Is(err, repositories.ErrDrawerNotFound) {
			return ErrDrawerNotFound
		}
		return fmt.Errorf("failed to get drawer: %w", err)
	}

	if !claims.CanActOn(drawer.SellerID) {
		return ErrNotDrawerOwner
	}
	if !drawer.Open() {
		return ErrDrawerAlreadyClosed
	}

	// The repository matches only open drawers, so a concurrent close
	// loses cleanly instead of overwriting.
	err = s.repo.Close(ctx, drawerID, closingBalance, time.Now().UTC())
	if err != nil {
		if errors.Is(err, repositories.ErrDrawerNotFound) {
			return ErrDrawerAlreadyClosed
		}
		return fmt.Errorf("failed to close drawer: %w", err)
	}
	return nil
}

func (s *service) AddSale(ctx context.Context, claims *models.UserClaims, drawerID uint, saleID uint) error {
	if !claims.CanSell() {
		return ErrPermissionDenied
	}

	drawer, err := s.repo.GetByID(ctx, drawerID)
	if err != nil {
		if errors.Is(err, repositories.ErrDrawerNotFound) {
			return ErrDrawerNotFound
		}
		return fmt.Errorf("failed to get drawer: %w", err)
	}

	if !claims.CanActOn(drawer.SellerID) {
		return ErrNotDrawerOwner
	}
	if !drawer.Open() {
		return ErrDrawerAlreadyClosed
	}

	if err := s.repo.AppendSale(ctx, drawerID, saleID); err != nil {
		return fmt.Errorf("failed to add sale to drawer: %w", err)
	}
	return nil
}

func (s *service) History(ctx context.Context, claims *models.UserClaims) ([]models.CashDrawer, error) {
	if !claims.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	return s.repo.List(ctx)
}
