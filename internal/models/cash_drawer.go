package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// CashDrawer is one seller working session, opened with a counted float and
// closed once against a physical cash count. A drawer is open while
// ClosedAt is NULL; at most one open drawer exists per seller.
type CashDrawer struct {
	gorm.Model
	SellerID       uint          `gorm:"index;not null" json:"seller_id"`
	OpeningBalance float64       `gorm:"not null" json:"opening_balance"`
	ClosingBalance *float64      `json:"closing_balance,omitempty"`
	SalesIDs       pq.Int64Array `gorm:"type:bigint[];default:'{}'" json:"sales_ids"`
	ClosedAt       *time.Time    `json:"closed_at,omitempty"`
}

// Open reports whether the session is still running.
func (d *CashDrawer) Open() bool {
	return d.ClosedAt == nil
}
