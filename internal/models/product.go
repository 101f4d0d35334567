package models

import (
	"gorm.io/gorm"
)

// Product is a catalog entry. Stock is a plain additive counter that
// sales decrement and cancellations restore. It may go negative; a
// negative value signals "needs restock" rather than blocking a sale.
type Product struct {
	gorm.Model
	Name              string  `gorm:"not null" json:"name"`
	Price             float64 `gorm:"not null" json:"price"`
	Stock             int     `gorm:"not null;default:0" json:"stock"`
	LowStockThreshold int     `gorm:"default:10" json:"low_stock_threshold"`
	Category          string  `gorm:"default:'general'" json:"category"`
	ImageURL          string  `gorm:"type:text" json:"image_url"`
}

// LowStock reports whether the product is at or below its restock threshold.
func (p *Product) LowStock() bool {
	return p.Stock <= p.LowStockThreshold
}
