package models

import "github.com/golang-jwt/jwt/v5"

// Application permissions
const (
	PermissionSaleCreate        = "sale:create"
	PermissionSaleCancel        = "sale:cancel"
	PermissionDrawerManage      = "drawer:manage"
	PermissionCatalogWrite      = "catalog:write"
	PermissionTransactionReview = "transaction:review"
	PermissionUserManage        = "user:manage"
	PermissionPushSend          = "push:send"
	PermissionStatsRead         = "stats:read"
)

// UserClaims is the policy object carried through every request. Each core
// operation consults it with (role, caller id, resource owner id) instead of
// doing ad hoc per-route checks.
type UserClaims struct {
	jwt.RegisteredClaims
	UserID       uint     `json:"user_id"`
	Username     string   `json:"username"`
	Role         string   `json:"role"`
	Permissions  []string `json:"permissions"`
	TokenVersion int      `json:"token_version"`
}

// HasPermission checks if the claims include a specific permission.
func (c *UserClaims) HasPermission(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the caller holds the admin role.
func (c *UserClaims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// CanSell reports whether the caller may run the point of sale:
// sellers and admins only.
func (c *UserClaims) CanSell() bool {
	return c.Role == RoleSeller || c.Role == RoleAdmin
}

// CanActOn reports whether the caller may operate on a resource owned by
// ownerID: the owner themselves or an admin.
func (c *UserClaims) CanActOn(ownerID uint) bool {
	return c.UserID == ownerID || c.IsAdmin()
}

// GetDefaultPermissions returns default permissions based on role.
func GetDefaultPermissions(role string) []string {
	switch role {
	case RoleAdmin:
		return []string{
			PermissionSaleCreate,
			PermissionSaleCancel,
			PermissionDrawerManage,
			PermissionCatalogWrite,
			PermissionTransactionReview,
			PermissionUserManage,
			PermissionPushSend,
			PermissionStatsRead,
		}
	case RoleSeller:
		return []string{
			PermissionSaleCreate,
			PermissionSaleCancel,
			PermissionDrawerManage,
		}
	case RoleCustomer:
		return []string{}
	default:
		return []string{}
	}
}
