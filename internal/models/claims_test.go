package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClaimsRolePredicates(t *testing.T) {
	admin := &UserClaims{UserID: 1, Role: RoleAdmin}
	seller := &UserClaims{UserID: 2, Role: RoleSeller}
	customer := &UserClaims{UserID: 3, Role: RoleCustomer}

	assert.True(t, admin.IsAdmin())
	assert.False(t, seller.IsAdmin())

	assert.True(t, admin.CanSell())
	assert.True(t, seller.CanSell())
	assert.False(t, customer.CanSell())

	// Owner or admin, nobody else.
	assert.True(t, seller.CanActOn(2))
	assert.False(t, seller.CanActOn(3))
	assert.True(t, admin.CanActOn(3))
	assert.True(t, customer.CanActOn(3))
	assert.False(t, customer.CanActOn(2))
}

func TestGetDefaultPermissions(t *testing.T) {
	admin := GetDefaultPermissions(RoleAdmin)
	assert.Contains(t, admin, PermissionTransactionReview)
	assert.Contains(t, admin, PermissionUserManage)

	seller := GetDefaultPermissions(RoleSeller)
	assert.Contains(t, seller, PermissionSaleCreate)
	assert.Contains(t, seller, PermissionDrawerManage)
	assert.NotContains(t, seller, PermissionUserManage)

	assert.Empty(t, GetDefaultPermissions(RoleCustomer))
	assert.Empty(t, GetDefaultPermissions("ghost"))
}

func TestHasPermission(t *testing.T) {
	claims := &UserClaims{Permissions: GetDefaultPermissions(RoleSeller)}
	assert.True(t, claims.HasPermission(PermissionSaleCancel))
	assert.False(t, claims.HasPermission(PermissionPushSend))
}
