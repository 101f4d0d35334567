package models

import (
	"gorm.io/gorm"
)

// Payment methods
const (
	PaymentMethodFiado  = "fiado"  // on account: increases customer debt
	PaymentMethodCredit = "credit" // spends down prepaid credit
	PaymentMethodCash   = "cash"
	PaymentMethodPix    = "pix"
)

// Sale statuses
const (
	SaleStatusCompleted = "completed"
	SaleStatusCancelled = "cancelled"
)

// SaleItem is a snapshot of a product at the moment of sale. Name and
// UnitPrice are denormalized on purpose: later catalog edits never
// retroactively change a recorded sale.
type SaleItem struct {
	ID        uint    `gorm:"primarykey" json:"id"`
	SaleID    uint    `gorm:"index;not null" json:"sale_id"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Name      string  `gorm:"not null" json:"name"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"not null" json:"unit_price"`
}

// Sale is created completed and transitions once, irreversibly, to
// cancelled. Reference is a per-sale idempotency key.
type Sale struct {
	gorm.Model
	Reference          string     `gorm:"uniqueIndex;not null" json:"reference"`
	SellerID           uint       `gorm:"index;not null" json:"seller_id"`
	CustomerID         uint       `gorm:"index;not null" json:"customer_id"`
	Items              []SaleItem `gorm:"foreignKey:SaleID" json:"items"`
	Total              float64    `gorm:"not null" json:"total"`
	PaymentMethod      string     `gorm:"not null" json:"payment_method"`
	Status             string     `gorm:"not null;default:'completed'" json:"status"`
	CancellationReason *string    `json:"cancellation_reason,omitempty"`
}
