package models

import (
	"gorm.io/gorm"
)

// Notification target types
const (
	TargetAllUsers = "all_users"
	TargetRole     = "role"
	TargetDebtors  = "debtors"
	TargetManual   = "manual"
)

// PushSubscription stores one browser push subscription per user.
// Subscribing again replaces the stored payload, it never duplicates.
type PushSubscription struct {
	gorm.Model
	UserID           uint `gorm:"uniqueIndex;not null" json:"user_id"`
	SubscriptionData JSON `gorm:"type:jsonb" json:"subscription_data"`
}

// Notification is the history record of an admin broadcast. Actual
// delivery happens out of process; the core only resolves targets and
// keeps the audit trail.
type Notification struct {
	gorm.Model
	Message     string `gorm:"not null" json:"message"`
	TargetType  string `gorm:"not null" json:"target_type"`
	TargetCount int    `json:"target_count"`
	SentBy      uint   `gorm:"not null" json:"sent_by"`
}
