package models

import (
	"time"

	"gorm.io/gorm"
)

// Transaction types
const (
	TransactionTypeCreditAdd   = "credit_add"
	TransactionTypeDebtPayment = "debt_payment"
)

// Transaction statuses
const (
	TransactionStatusPending  = "pending"
	TransactionStatusApproved = "approved"
	TransactionStatusRejected = "rejected"
)

// Transaction is a customer-initiated credit top-up or debt payment
// request. It is created pending and reviewed exactly once by an admin;
// the balance effect applies only at approval, never at creation or
// rejection.
type Transaction struct {
	gorm.Model
	Reference  string     `gorm:"uniqueIndex;not null" json:"reference"`
	UserID     uint       `gorm:"index;not null" json:"user_id"`
	Type       string     `gorm:"not null" json:"type"`
	Amount     float64    `gorm:"not null" json:"amount"`
	Status     string     `gorm:"not null;default:'pending'" json:"status"`
	ReceiptURL string     `gorm:"type:text" json:"receipt_url"`
	AdminNote  *string    `json:"admin_note,omitempty"`
	ReviewedBy *uint      `json:"reviewed_by,omitempty"`
	ReviewedAt *time.Time `json:"reviewed_at,omitempty"`
}

// ValidTransactionType reports whether t is a known transaction type.
func ValidTransactionType(t string) bool {
	return t == TransactionTypeCreditAdd || t == TransactionTypeDebtPayment
}

// ValidReviewStatus reports whether s is a terminal review status.
func ValidReviewStatus(s string) bool {
	return s == TransactionStatusApproved || s == TransactionStatusRejected
}
