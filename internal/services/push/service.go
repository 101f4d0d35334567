// Package push resolves notification targets and keeps the broadcast
// audit trail. Actual delivery is out of process; the core stores one
// subscription per user and decides who a broadcast reaches.
package push

import (
	"context"
	"errors"
	"fmt"

	"cantina/internal/models"
	"cantina/internal/repositories"
)

// Service errors
var (
	ErrAdminRequired = errors.New("admin access required")
	ErrInvalidTarget = errors.New("invalid notification target")
)

// SendInput describes an admin broadcast and its audience.
type SendInput struct {
	Message       string `json:"message"`
	TargetType    string `json:"target_type"`
	TargetRole    string `json:"target_role,omitempty"`
	TargetUserIDs []uint `json:"target_user_ids,omitempty"`
}

// SendResult reports how many stored subscriptions the broadcast reached.
type SendResult struct {
	Recipients int `json:"recipients"`
}

type Service interface {
	// Subscribe upserts the caller's push subscription.
	Subscribe(ctx context.Context, claims *models.UserClaims, data models.JSON) error

	// Send resolves the audience, records the broadcast and returns the
	// subscription count.
	Send(ctx context.Context, claims *models.UserClaims, input SendInput) (*SendResult, error)
}

type service struct {
	pushRepo repositories.PushRepository
	userRepo repositories.UserRepository
}

func NewService(pushRepo repositories.PushRepository, userRepo repositories.UserRepository) Service {
	return &service{
		pushRepo: pushRepo,
		userRepo: userRepo,
	}
}

func (s *service) Subscribe(ctx context.Context, claims *models.UserClaims, data models.JSON) error {
	return s.pushRepo.Upsert(ctx, claims.UserID, data)
}

func (s *service) Send(ctx context.Context, claims *models.UserClaims, input SendInput) (*SendResult, error) {
	if !claims.IsAdmin() {
		return nil, ErrAdminRequired
	}

	targetIDs, err := s.resolveTargets(input)
	if err != nil {
		return nil, err
	}

	subs, err := s.pushRepo.ListByUserIDs(ctx, targetIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve subscriptions: %w", err)
	}

	record := &models.Notification{
		Message:     input.Message,
		TargetType:  input.TargetType,
		TargetCount: len(targetIDs),
		SentBy:      claims.UserID,
	}
	if err := s.pushRepo.RecordNotification(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to record notification: %w", err)
	}

	return &SendResult{Recipients: len(subs)}, nil
}

func (s *service) resolveTargets(input SendInput) ([]uint, error) {
	switch input.TargetType {
	case models.TargetAllUsers:
		return s.notifiableIDs("", false)
	case models.TargetRole:
		return s.notifiableIDs(input.TargetRole, false)
	case models.TargetDebtors:
		return s.notifiableIDs("", true)
	case models.TargetManual:
		return input.TargetUserIDs, nil
	default:
		return nil, ErrInvalidTarget
	}
}

func (s *service) notifiableIDs(role string, debtorsOnly bool) ([]uint, error) {
	users, err := s.userRepo.ListNotifiable(role, debtorsOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list target users: %w", err)
	}
	ids := make([]uint, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids, nil
}
