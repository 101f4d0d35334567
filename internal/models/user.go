package models

import (
	"gorm.io/gorm"
)

// User roles
const (
	RoleCustomer = "customer"
	RoleSeller   = "seller"
	RoleAdmin    = "admin"
)

// User is a canteen account. Credit and Debt are independent signed
// accumulators: credit is a prepaid balance spent down by "credit" sales,
// debt is the running fiado tab. Neither has an enforced floor; they are
// only ever mutated through atomic column increments.
type User struct {
	gorm.Model
	Username             string  `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash         string  `gorm:"not null" json:"-"`
	Role                 string  `gorm:"default:'customer'" json:"role"`
	Credit               float64 `gorm:"default:0" json:"credit"`
	Debt                 float64 `gorm:"default:0" json:"debt"`
	NotificationsEnabled bool    `gorm:"default:true" json:"notifications_enabled"`
	ThemePreference      string  `gorm:"default:'light'" json:"theme_preference"`
	TokenVersion         int     `gorm:"default:1" json:"-"`
}

// BalanceField selects which accumulator a balance adjustment targets.
type BalanceField string

const (
	BalanceCredit BalanceField = "credit"
	BalanceDebt   BalanceField = "debt"
)

// ValidAssignableRole reports whether a role can be assigned by an admin.
// Admin accounts are only created by the seeder, never promoted over the API.
func ValidAssignableRole(role string) bool {
	return role == RoleCustomer || role == RoleSeller
}
