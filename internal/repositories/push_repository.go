package repositories

import (
	"context"
	"fmt"

	"cantina/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PushRepository defines the interface for push subscription storage and
// the notification audit trail.
type PushRepository interface {
	// Upsert stores the user's subscription, replacing any existing one
	Upsert(ctx context.Context, userID uint, data models.JSON) error

	// ListByUserIDs returns the stored subscriptions for the given users
	ListByUserIDs(ctx context.Context, userIDs []uint) ([]models.PushSubscription, error)

	// RecordNotification appends a broadcast to the history
	RecordNotification(ctx context.Context, notification *models.Notification) error
}

type pushRepository struct {
	db *gorm.DB
}

// NewPushRepository creates a new instance of PushRepository.
func NewPushRepository(db *gorm.DB) PushRepository {
	return &pushRepository{db: db}
}

func (r *pushRepository) Upsert(ctx context.Context, userID uint, data models.JSON) error {
	sub := models.PushSubscription{UserID: userID, SubscriptionData: data}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"subscription_data", "updated_at"}),
	}).Create(&sub).Error
	if err != nil {
		return fmt.Errorf("failed to upsert push subscription: %w", err)
	}
	return nil
}

func (r *pushRepository) ListByUserIDs(ctx context.Context, userIDs []uint) ([]models.PushSubscription, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var subs []models.PushSubscription
	if err := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("failed to list push subscriptions: %w", err)
	}
	return subs, nil
}

func (r *pushRepository) RecordNotification(ctx context.Context, notification *models.Notification) error {
	if err := r.db.WithContext(ctx).Create(notification).Error; err != nil {
		return fmt.Errorf("failed to record notification: %w", err)
	}
	return nil
}
