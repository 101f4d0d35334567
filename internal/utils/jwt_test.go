package utils

import (
	"os"
	"testing"

	"cantina/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	os.Exit(m.Run())
}

func TestGenerateAndParseTokens(t *testing.T) {
	claims := &models.UserClaims{
		UserID:       7,
		Username:     "maria",
		Role:         models.RoleSeller,
		Permissions:  models.GetDefaultPermissions(models.RoleSeller),
		TokenVersion: 2,
	}

	access, refresh, err := GenerateTokens(claims)
	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	_, parsed, err := ParseToken(access)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), parsed.UserID)
	assert.Equal(t, "maria", parsed.Username)
	assert.Equal(t, models.RoleSeller, parsed.Role)
	assert.Equal(t, 2, parsed.TokenVersion)
	assert.Equal(t, "cantina-api", parsed.Issuer)
	assert.Contains(t, parsed.Permissions, models.PermissionSaleCreate)
}

func TestParseTokenRejectsTampering(t *testing.T) {
	access, _, err := GenerateTokens(&models.UserClaims{UserID: 7, Username: "maria", Role: models.RoleCustomer})
	assert.NoError(t, err)

	_, _, err = ParseToken(access + "x")
	assert.Error(t, err)

	_, _, err = ParseToken("not-a-token")
	assert.Error(t, err)
}
